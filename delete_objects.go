package s3sig

import (
	"encoding/xml"
	"net/http"
	"net/url"
	"time"
)

// ObjectIdentifier identifies one object to remove in a DeleteObjects
// request, optionally pinned to a specific version.
type ObjectIdentifier struct {
	Key       string
	VersionID string
}

// DeleteObjects signs a POST request that deletes up to 1000 objects in a
// single call.
type DeleteObjects struct {
	base
	objects []ObjectIdentifier
	quiet   bool
}

// DeleteObjects builds a DeleteObjects action for the given objects.
func (b *Bucket) DeleteObjects(objects []ObjectIdentifier) *DeleteObjects {
	a := &DeleteObjects{base: newBase(b), objects: objects}
	a.query.Set("delete", "")
	return a
}

// SetQuiet sets whether the response should omit per-key success entries,
// reporting only errors.
func (a *DeleteObjects) SetQuiet(quiet bool) *DeleteObjects {
	a.quiet = quiet
	return a
}

// Objects returns the object identifiers this action will delete.
func (a *DeleteObjects) Objects() []ObjectIdentifier {
	out := make([]ObjectIdentifier, len(a.objects))
	copy(out, a.objects)
	return out
}

type deleteObjectsBodyObject struct {
	Key       string `xml:"Key"`
	VersionID string `xml:"VersionId,omitempty"`
}

type deleteObjectsBody struct {
	XMLName xml.Name                  `xml:"Delete"`
	Objects []deleteObjectsBodyObject `xml:"Object"`
	Quiet   *bool                     `xml:"Quiet,omitempty"`
}

// Body renders the <Delete> XML request body for this action's objects.
func (a *DeleteObjects) Body() ([]byte, error) {
	body := deleteObjectsBody{}
	for _, o := range a.objects {
		body.Objects = append(body.Objects, deleteObjectsBodyObject{Key: o.Key, VersionID: o.VersionID})
	}
	if a.quiet {
		q := true
		body.Quiet = &q
	}
	return xml.Marshal(body)
}

// Method returns MethodPost.
func (a *DeleteObjects) Method() Method { return MethodPost }

// Sign returns a presigned URL valid for expiresIn, signed for the current time.
func (a *DeleteObjects) Sign(creds *Credentials, expiresIn time.Duration) (*url.URL, error) {
	return a.SignWithTime(creds, expiresIn, time.Now())
}

// SignWithTime returns a presigned URL valid for expiresIn, signed for t.
func (a *DeleteObjects) SignWithTime(creds *Credentials, expiresIn time.Duration, t time.Time) (*url.URL, error) {
	return sign(a.bucket, creds, a.Method(), a.bucket.BaseURL(""), a.query, a.headers, expiresIn, t)
}

// SignHeaders returns the method, URL, and headers for an
// Authorization-header-signed request, signed for the current time.
func (a *DeleteObjects) SignHeaders(creds *Credentials) (Method, *url.URL, http.Header, error) {
	return a.SignHeadersWithTime(creds, time.Now())
}

// SignHeadersWithTime returns the method, URL, and headers for an
// Authorization-header-signed request, signed for t.
func (a *DeleteObjects) SignHeadersWithTime(creds *Credentials, t time.Time) (Method, *url.URL, http.Header, error) {
	return signHeaders(a.bucket, creds, a.Method(), a.bucket.BaseURL(""), a.query, a.headers, t)
}

// DeletedObject reports a single object successfully deleted by a
// DeleteObjects request.
type DeletedObject struct {
	Key       string `xml:"Key"`
	VersionID string `xml:"VersionId"`
}

// DeletedObjectError reports a single object DeleteObjects failed to delete.
type DeletedObjectError struct {
	Key     string `xml:"Key"`
	Code    string `xml:"Code"`
	Message string `xml:"Message"`
}

// DeleteObjectsOutput is the parsed response body of a DeleteObjects
// request.
type DeleteObjectsOutput struct {
	Deleted []DeletedObject      `xml:"Deleted"`
	Errors  []DeletedObjectError `xml:"Error"`
}

// ParseDeleteObjectsResponse parses a DeleteObjects response body.
func ParseDeleteObjectsResponse(body []byte) (*DeleteObjectsOutput, error) {
	return parseXML[DeleteObjectsOutput]("DeleteResult", body)
}

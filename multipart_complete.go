package s3sig

import (
	"bytes"
	"encoding/xml"
	"net/http"
	"net/url"
	"sort"
	"time"
)

// CompletedPart identifies one uploaded part by its part number and the ETag
// S3 returned for it, as required by CompleteMultipartUpload's request body.
type CompletedPart struct {
	PartNumber int
	ETag       string
}

// CompleteMultipartUpload signs a POST request that assembles a multipart
// upload's parts into a single object.
type CompleteMultipartUpload struct {
	base
	key      string
	uploadID string
	parts    []CompletedPart
}

// CompleteMultipartUpload builds a CompleteMultipartUpload action. key and
// uploadID must not be empty, and parts must contain at least one entry;
// parts are reordered into ascending part-number order regardless of the
// order passed in.
func (b *Bucket) CompleteMultipartUpload(key, uploadID string, parts []CompletedPart) (*CompleteMultipartUpload, error) {
	if err := requireObjectKey("CompleteMultipartUpload", key); err != nil {
		return nil, err
	}
	if uploadID == "" {
		return nil, &ParameterError{Action: "CompleteMultipartUpload", Field: "upload_id", Value: uploadID, Err: ErrEmptyUploadID}
	}
	if len(parts) == 0 {
		return nil, &ParameterError{Action: "CompleteMultipartUpload", Field: "parts", Value: "", Err: ErrNoParts}
	}

	sorted := make([]CompletedPart, len(parts))
	copy(sorted, parts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PartNumber < sorted[j].PartNumber })

	a := &CompleteMultipartUpload{base: newBase(b), key: key, uploadID: uploadID, parts: sorted}
	a.query.Set("uploadId", uploadID)
	return a, nil
}

// Key returns the object key this action addresses.
func (a *CompleteMultipartUpload) Key() string { return a.key }

// UploadID returns the multipart upload id being completed.
func (a *CompleteMultipartUpload) UploadID() string { return a.uploadID }

// Parts returns the parts list in the ascending order the request body will
// use.
func (a *CompleteMultipartUpload) Parts() []CompletedPart {
	out := make([]CompletedPart, len(a.parts))
	copy(out, a.parts)
	return out
}

// completeMultipartUploadBodyPart and completeMultipartUploadBody mirror the
// request body's wire shape: one <Part> per entry containing <PartNumber>
// before <ETag>, in that order.
type completeMultipartUploadBodyPart struct {
	PartNumber int    `xml:"PartNumber"`
	ETag       string `xml:"ETag"`
}

type completeMultipartUploadBody struct {
	XMLName xml.Name                          `xml:"CompleteMultipartUpload"`
	Parts   []completeMultipartUploadBodyPart `xml:"Part"`
}

// Body renders the <CompleteMultipartUpload> XML request body for this
// action's parts, in ascending part-number order.
func (a *CompleteMultipartUpload) Body() ([]byte, error) {
	body := completeMultipartUploadBody{}
	for _, p := range a.parts {
		body.Parts = append(body.Parts, completeMultipartUploadBodyPart{PartNumber: p.PartNumber, ETag: p.ETag})
	}
	out, err := xml.Marshal(body)
	if err != nil {
		return nil, err
	}
	// encoding/xml escapes '"' in character data as "&#34;"; ETags are quoted
	// strings and are written with literal quotes instead.
	return bytes.ReplaceAll(out, []byte("&#34;"), []byte(`"`)), nil
}

// Method returns MethodPost.
func (a *CompleteMultipartUpload) Method() Method { return MethodPost }

// Sign returns a presigned URL valid for expiresIn, signed for the current time.
func (a *CompleteMultipartUpload) Sign(creds *Credentials, expiresIn time.Duration) (*url.URL, error) {
	return a.SignWithTime(creds, expiresIn, time.Now())
}

// SignWithTime returns a presigned URL valid for expiresIn, signed for t.
func (a *CompleteMultipartUpload) SignWithTime(creds *Credentials, expiresIn time.Duration, t time.Time) (*url.URL, error) {
	return sign(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.key), a.query, a.headers, expiresIn, t)
}

// SignHeaders returns the method, URL, and headers for an
// Authorization-header-signed request, signed for the current time.
func (a *CompleteMultipartUpload) SignHeaders(creds *Credentials) (Method, *url.URL, http.Header, error) {
	return a.SignHeadersWithTime(creds, time.Now())
}

// SignHeadersWithTime returns the method, URL, and headers for an
// Authorization-header-signed request, signed for t.
func (a *CompleteMultipartUpload) SignHeadersWithTime(creds *Credentials, t time.Time) (Method, *url.URL, http.Header, error) {
	return signHeaders(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.key), a.query, a.headers, t)
}

// CompleteMultipartUploadOutput is the parsed response body of a successful
// CompleteMultipartUpload request.
type CompleteMultipartUploadOutput struct {
	Location string `xml:"Location"`
	Bucket   string `xml:"Bucket"`
	Key      string `xml:"Key"`
	ETag     string `xml:"ETag"`
}

// ParseCompleteMultipartUploadResponse parses a CompleteMultipartUpload
// response body.
func ParseCompleteMultipartUploadResponse(body []byte) (*CompleteMultipartUploadOutput, error) {
	return parseXML[CompleteMultipartUploadOutput]("CompleteMultipartUploadResult", body)
}

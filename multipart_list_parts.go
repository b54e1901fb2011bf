package s3sig

import (
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ListParts signs a GET request that lists the parts already uploaded for an
// in-progress multipart upload.
type ListParts struct {
	base
	key      string
	uploadID string
}

// ListParts builds a ListParts action. key and uploadID must not be empty.
func (b *Bucket) ListParts(key, uploadID string) (*ListParts, error) {
	if err := requireObjectKey("ListParts", key); err != nil {
		return nil, err
	}
	if uploadID == "" {
		return nil, &ParameterError{Action: "ListParts", Field: "upload_id", Value: uploadID, Err: ErrEmptyUploadID}
	}

	a := &ListParts{base: newBase(b), key: key, uploadID: uploadID}
	a.query.Set("uploadId", uploadID)
	return a, nil
}

// Key returns the object key this action addresses.
func (a *ListParts) Key() string { return a.key }

// UploadID returns the multipart upload id being listed.
func (a *ListParts) UploadID() string { return a.uploadID }

// SetMaxParts sets the max-parts query parameter, bounding how many parts a
// single response page returns.
func (a *ListParts) SetMaxParts(n int) *ListParts {
	a.query.Set("max-parts", strconv.Itoa(n))
	return a
}

// SetPartNumberMarker sets the part-number-marker query parameter, resuming
// listing after the given part number.
func (a *ListParts) SetPartNumberMarker(marker string) *ListParts {
	a.query.Set("part-number-marker", marker)
	return a
}

// Method returns MethodGet.
func (a *ListParts) Method() Method { return MethodGet }

// Sign returns a presigned URL valid for expiresIn, signed for the current time.
func (a *ListParts) Sign(creds *Credentials, expiresIn time.Duration) (*url.URL, error) {
	return a.SignWithTime(creds, expiresIn, time.Now())
}

// SignWithTime returns a presigned URL valid for expiresIn, signed for t.
func (a *ListParts) SignWithTime(creds *Credentials, expiresIn time.Duration, t time.Time) (*url.URL, error) {
	return sign(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.key), a.query, a.headers, expiresIn, t)
}

// SignHeaders returns the method, URL, and headers for an
// Authorization-header-signed request, signed for the current time.
func (a *ListParts) SignHeaders(creds *Credentials) (Method, *url.URL, http.Header, error) {
	return a.SignHeadersWithTime(creds, time.Now())
}

// SignHeadersWithTime returns the method, URL, and headers for an
// Authorization-header-signed request, signed for t.
func (a *ListParts) SignHeadersWithTime(creds *Credentials, t time.Time) (Method, *url.URL, http.Header, error) {
	return signHeaders(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.key), a.query, a.headers, t)
}

// Part describes a single uploaded part as reported by ListParts.
type Part struct {
	PartNumber   int    `xml:"PartNumber"`
	LastModified string `xml:"LastModified"`
	ETag         string `xml:"ETag"`
	Size         int64  `xml:"Size"`
}

// ListPartsOutput is the parsed response body of a successful ListParts
// request.
type ListPartsOutput struct {
	Bucket               string `xml:"Bucket"`
	Key                  string `xml:"Key"`
	UploadID             string `xml:"UploadId"`
	MaxParts             int    `xml:"MaxParts"`
	IsTruncated          bool   `xml:"IsTruncated"`
	NextPartNumberMarker string `xml:"NextPartNumberMarker"`
	Parts                []Part `xml:"Part"`
}

// ParseListPartsResponse parses a ListParts response body.
func ParseListPartsResponse(body []byte) (*ListPartsOutput, error) {
	return parseXML[ListPartsOutput]("ListPartsResult", body)
}

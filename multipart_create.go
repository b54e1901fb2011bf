package s3sig

import (
	"net/http"
	"net/url"
	"time"
)

// CreateMultipartUpload signs a POST request that starts a multipart upload.
type CreateMultipartUpload struct {
	base
	key string
}

// CreateMultipartUpload builds a CreateMultipartUpload action for the given
// key. key must not be empty.
func (b *Bucket) CreateMultipartUpload(key string) (*CreateMultipartUpload, error) {
	if err := requireObjectKey("CreateMultipartUpload", key); err != nil {
		return nil, err
	}
	a := &CreateMultipartUpload{base: newBase(b), key: key}
	a.query.Set("uploads", "")
	return a, nil
}

// Key returns the object key this action addresses.
func (a *CreateMultipartUpload) Key() string { return a.key }

// Method returns MethodPost.
func (a *CreateMultipartUpload) Method() Method { return MethodPost }

// Sign returns a presigned URL valid for expiresIn, signed for the current time.
func (a *CreateMultipartUpload) Sign(creds *Credentials, expiresIn time.Duration) (*url.URL, error) {
	return a.SignWithTime(creds, expiresIn, time.Now())
}

// SignWithTime returns a presigned URL valid for expiresIn, signed for t.
func (a *CreateMultipartUpload) SignWithTime(creds *Credentials, expiresIn time.Duration, t time.Time) (*url.URL, error) {
	return sign(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.key), a.query, a.headers, expiresIn, t)
}

// SignHeaders returns the method, URL, and headers for an
// Authorization-header-signed request, signed for the current time.
func (a *CreateMultipartUpload) SignHeaders(creds *Credentials) (Method, *url.URL, http.Header, error) {
	return a.SignHeadersWithTime(creds, time.Now())
}

// SignHeadersWithTime returns the method, URL, and headers for an
// Authorization-header-signed request, signed for t.
func (a *CreateMultipartUpload) SignHeadersWithTime(creds *Credentials, t time.Time) (Method, *url.URL, http.Header, error) {
	return signHeaders(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.key), a.query, a.headers, t)
}

// CreateMultipartUploadOutput is the parsed response body of a successful
// CreateMultipartUpload request.
type CreateMultipartUploadOutput struct {
	Bucket   string `xml:"Bucket"`
	Key      string `xml:"Key"`
	UploadID string `xml:"UploadId"`
}

// ParseCreateMultipartUploadResponse parses a CreateMultipartUpload response
// body.
func ParseCreateMultipartUploadResponse(body []byte) (*CreateMultipartUploadOutput, error) {
	return parseXML[CreateMultipartUploadOutput]("InitiateMultipartUploadResult", body)
}

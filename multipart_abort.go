package s3sig

import (
	"net/http"
	"net/url"
	"time"
)

// AbortMultipartUpload signs a DELETE request that aborts an in-progress
// multipart upload and discards any parts already uploaded.
type AbortMultipartUpload struct {
	base
	key      string
	uploadID string
}

// AbortMultipartUpload builds an AbortMultipartUpload action. key and
// uploadID must not be empty.
func (b *Bucket) AbortMultipartUpload(key, uploadID string) (*AbortMultipartUpload, error) {
	if err := requireObjectKey("AbortMultipartUpload", key); err != nil {
		return nil, err
	}
	if uploadID == "" {
		return nil, &ParameterError{Action: "AbortMultipartUpload", Field: "upload_id", Value: uploadID, Err: ErrEmptyUploadID}
	}

	a := &AbortMultipartUpload{base: newBase(b), key: key, uploadID: uploadID}
	a.query.Set("uploadId", uploadID)
	return a, nil
}

// Key returns the object key this action addresses.
func (a *AbortMultipartUpload) Key() string { return a.key }

// UploadID returns the multipart upload id being aborted.
func (a *AbortMultipartUpload) UploadID() string { return a.uploadID }

// Method returns MethodDelete.
func (a *AbortMultipartUpload) Method() Method { return MethodDelete }

// Sign returns a presigned URL valid for expiresIn, signed for the current time.
func (a *AbortMultipartUpload) Sign(creds *Credentials, expiresIn time.Duration) (*url.URL, error) {
	return a.SignWithTime(creds, expiresIn, time.Now())
}

// SignWithTime returns a presigned URL valid for expiresIn, signed for t.
func (a *AbortMultipartUpload) SignWithTime(creds *Credentials, expiresIn time.Duration, t time.Time) (*url.URL, error) {
	return sign(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.key), a.query, a.headers, expiresIn, t)
}

// SignHeaders returns the method, URL, and headers for an
// Authorization-header-signed request, signed for the current time.
func (a *AbortMultipartUpload) SignHeaders(creds *Credentials) (Method, *url.URL, http.Header, error) {
	return a.SignHeadersWithTime(creds, time.Now())
}

// SignHeadersWithTime returns the method, URL, and headers for an
// Authorization-header-signed request, signed for t.
func (a *AbortMultipartUpload) SignHeadersWithTime(creds *Credentials, t time.Time) (Method, *url.URL, http.Header, error) {
	return signHeaders(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.key), a.query, a.headers, t)
}

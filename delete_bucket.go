package s3sig

import (
	"net/http"
	"net/url"
	"time"
)

// DeleteBucket signs a DELETE request that removes the bucket it was built
// from.
type DeleteBucket struct {
	base
}

// DeleteBucket builds a DeleteBucket action for this bucket.
func (b *Bucket) DeleteBucket() *DeleteBucket {
	return &DeleteBucket{base: newBase(b)}
}

// Method returns MethodDelete.
func (a *DeleteBucket) Method() Method { return MethodDelete }

// Sign returns a presigned URL valid for expiresIn, signed for the current time.
func (a *DeleteBucket) Sign(creds *Credentials, expiresIn time.Duration) (*url.URL, error) {
	return a.SignWithTime(creds, expiresIn, time.Now())
}

// SignWithTime returns a presigned URL valid for expiresIn, signed for t.
func (a *DeleteBucket) SignWithTime(creds *Credentials, expiresIn time.Duration, t time.Time) (*url.URL, error) {
	return sign(a.bucket, creds, a.Method(), a.bucket.BaseURL(""), a.query, a.headers, expiresIn, t)
}

// SignHeaders returns the method, URL, and headers for an
// Authorization-header-signed request, signed for the current time.
func (a *DeleteBucket) SignHeaders(creds *Credentials) (Method, *url.URL, http.Header, error) {
	return a.SignHeadersWithTime(creds, time.Now())
}

// SignHeadersWithTime returns the method, URL, and headers for an
// Authorization-header-signed request, signed for t.
func (a *DeleteBucket) SignHeadersWithTime(creds *Credentials, t time.Time) (Method, *url.URL, http.Header, error) {
	return signHeaders(a.bucket, creds, a.Method(), a.bucket.BaseURL(""), a.query, a.headers, t)
}

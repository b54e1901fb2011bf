package s3sig

import (
	"net/http"
	"net/url"
	"time"
)

// HeadBucket signs a HEAD request that checks for the bucket's existence and
// that the caller has permission to access it.
type HeadBucket struct {
	base
}

// HeadBucket builds a HeadBucket action for this bucket.
func (b *Bucket) HeadBucket() *HeadBucket {
	return &HeadBucket{base: newBase(b)}
}

// Method returns MethodHead.
func (a *HeadBucket) Method() Method { return MethodHead }

// Sign returns a presigned URL valid for expiresIn, signed for the current time.
func (a *HeadBucket) Sign(creds *Credentials, expiresIn time.Duration) (*url.URL, error) {
	return a.SignWithTime(creds, expiresIn, time.Now())
}

// SignWithTime returns a presigned URL valid for expiresIn, signed for t.
func (a *HeadBucket) SignWithTime(creds *Credentials, expiresIn time.Duration, t time.Time) (*url.URL, error) {
	return sign(a.bucket, creds, a.Method(), a.bucket.BaseURL(""), a.query, a.headers, expiresIn, t)
}

// SignHeaders returns the method, URL, and headers for an
// Authorization-header-signed request, signed for the current time.
func (a *HeadBucket) SignHeaders(creds *Credentials) (Method, *url.URL, http.Header, error) {
	return a.SignHeadersWithTime(creds, time.Now())
}

// SignHeadersWithTime returns the method, URL, and headers for an
// Authorization-header-signed request, signed for t.
func (a *HeadBucket) SignHeadersWithTime(creds *Credentials, t time.Time) (Method, *url.URL, http.Header, error) {
	return signHeaders(a.bucket, creds, a.Method(), a.bucket.BaseURL(""), a.query, a.headers, t)
}

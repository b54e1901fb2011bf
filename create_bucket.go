package s3sig

import (
	"net/http"
	"net/url"
	"time"
)

// CreateBucket signs a PUT request that creates the bucket it was built from.
type CreateBucket struct {
	base
}

// CreateBucket builds a CreateBucket action for this bucket.
func (b *Bucket) CreateBucket() *CreateBucket {
	return &CreateBucket{base: newBase(b)}
}

// Method returns MethodPut.
func (a *CreateBucket) Method() Method { return MethodPut }

// Sign returns a presigned URL valid for expiresIn, signed for the current
// time.
func (a *CreateBucket) Sign(creds *Credentials, expiresIn time.Duration) (*url.URL, error) {
	return a.SignWithTime(creds, expiresIn, time.Now())
}

// SignWithTime returns a presigned URL valid for expiresIn, signed for t.
func (a *CreateBucket) SignWithTime(creds *Credentials, expiresIn time.Duration, t time.Time) (*url.URL, error) {
	return sign(a.bucket, creds, a.Method(), a.bucket.BaseURL(""), a.query, a.headers, expiresIn, t)
}

// SignHeaders returns the method, URL, and headers for an Authorization-header-signed
// request, signed for the current time.
func (a *CreateBucket) SignHeaders(creds *Credentials) (Method, *url.URL, http.Header, error) {
	return a.SignHeadersWithTime(creds, time.Now())
}

// SignHeadersWithTime returns the method, URL, and headers for an
// Authorization-header-signed request, signed for t.
func (a *CreateBucket) SignHeadersWithTime(creds *Credentials, t time.Time) (Method, *url.URL, http.Header, error) {
	return signHeaders(a.bucket, creds, a.Method(), a.bucket.BaseURL(""), a.query, a.headers, t)
}

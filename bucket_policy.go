package s3sig

import (
	"net/http"
	"net/url"
	"time"
)

// GetBucketPolicy signs a GET request that fetches a bucket's policy
// document. The response body is the raw JSON policy document; this library
// has no parser for it, since modeling the IAM policy grammar is out of scope
// for a request-signing library.
type GetBucketPolicy struct {
	base
}

// GetBucketPolicy builds a GetBucketPolicy action for this bucket.
func (b *Bucket) GetBucketPolicy() *GetBucketPolicy {
	a := &GetBucketPolicy{base: newBase(b)}
	a.query.Set("policy", "")
	return a
}

// Method returns MethodGet.
func (a *GetBucketPolicy) Method() Method { return MethodGet }

// Sign returns a presigned URL valid for expiresIn, signed for the current time.
func (a *GetBucketPolicy) Sign(creds *Credentials, expiresIn time.Duration) (*url.URL, error) {
	return a.SignWithTime(creds, expiresIn, time.Now())
}

// SignWithTime returns a presigned URL valid for expiresIn, signed for t.
func (a *GetBucketPolicy) SignWithTime(creds *Credentials, expiresIn time.Duration, t time.Time) (*url.URL, error) {
	return sign(a.bucket, creds, a.Method(), a.bucket.BaseURL(""), a.query, a.headers, expiresIn, t)
}

// SignHeaders returns the method, URL, and headers for an
// Authorization-header-signed request, signed for the current time.
func (a *GetBucketPolicy) SignHeaders(creds *Credentials) (Method, *url.URL, http.Header, error) {
	return a.SignHeadersWithTime(creds, time.Now())
}

// SignHeadersWithTime returns the method, URL, and headers for an
// Authorization-header-signed request, signed for t.
func (a *GetBucketPolicy) SignHeadersWithTime(creds *Credentials, t time.Time) (Method, *url.URL, http.Header, error) {
	return signHeaders(a.bucket, creds, a.Method(), a.bucket.BaseURL(""), a.query, a.headers, t)
}

package s3sig

import (
	"net/http"
	"net/url"
	"time"
)

// HeadObject signs a HEAD request that fetches an object's metadata without
// its body.
type HeadObject struct {
	base
	key string
}

// HeadObject builds a HeadObject action for the given key. key must not be
// empty.
func (b *Bucket) HeadObject(key string) (*HeadObject, error) {
	if err := requireObjectKey("HeadObject", key); err != nil {
		return nil, err
	}
	return &HeadObject{base: newBase(b), key: key}, nil
}

// Key returns the object key this action addresses.
func (a *HeadObject) Key() string { return a.key }

// Method returns MethodHead.
func (a *HeadObject) Method() Method { return MethodHead }

// Sign returns a presigned URL valid for expiresIn, signed for the current time.
func (a *HeadObject) Sign(creds *Credentials, expiresIn time.Duration) (*url.URL, error) {
	return a.SignWithTime(creds, expiresIn, time.Now())
}

// SignWithTime returns a presigned URL valid for expiresIn, signed for t.
func (a *HeadObject) SignWithTime(creds *Credentials, expiresIn time.Duration, t time.Time) (*url.URL, error) {
	return sign(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.key), a.query, a.headers, expiresIn, t)
}

// SignHeaders returns the method, URL, and headers for an
// Authorization-header-signed request, signed for the current time.
func (a *HeadObject) SignHeaders(creds *Credentials) (Method, *url.URL, http.Header, error) {
	return a.SignHeadersWithTime(creds, time.Now())
}

// SignHeadersWithTime returns the method, URL, and headers for an
// Authorization-header-signed request, signed for t.
func (a *HeadObject) SignHeadersWithTime(creds *Credentials, t time.Time) (Method, *url.URL, http.Header, error) {
	return signHeaders(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.key), a.query, a.headers, t)
}

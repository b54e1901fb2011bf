package s3sig

import (
	"net/http"
	"net/url"
	"time"
)

// GetObject signs a GET request that fetches an object's content.
type GetObject struct {
	base
	key string
}

// GetObject builds a GetObject action for the given key. key must not be
// empty.
func (b *Bucket) GetObject(key string) (*GetObject, error) {
	if err := requireObjectKey("GetObject", key); err != nil {
		return nil, err
	}
	return &GetObject{base: newBase(b), key: key}, nil
}

// Key returns the object key this action addresses.
func (a *GetObject) Key() string { return a.key }

// Method returns MethodGet.
func (a *GetObject) Method() Method { return MethodGet }

// Sign returns a presigned URL valid for expiresIn, signed for the current time.
func (a *GetObject) Sign(creds *Credentials, expiresIn time.Duration) (*url.URL, error) {
	return a.SignWithTime(creds, expiresIn, time.Now())
}

// SignWithTime returns a presigned URL valid for expiresIn, signed for t.
func (a *GetObject) SignWithTime(creds *Credentials, expiresIn time.Duration, t time.Time) (*url.URL, error) {
	return sign(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.key), a.query, a.headers, expiresIn, t)
}

// SignHeaders returns the method, URL, and headers for an
// Authorization-header-signed request, signed for the current time.
func (a *GetObject) SignHeaders(creds *Credentials) (Method, *url.URL, http.Header, error) {
	return a.SignHeadersWithTime(creds, time.Now())
}

// SignHeadersWithTime returns the method, URL, and headers for an
// Authorization-header-signed request, signed for t.
func (a *GetObject) SignHeadersWithTime(creds *Credentials, t time.Time) (Method, *url.URL, http.Header, error) {
	return signHeaders(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.key), a.query, a.headers, t)
}

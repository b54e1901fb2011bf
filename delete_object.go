package s3sig

import (
	"net/http"
	"net/url"
	"time"
)

// DeleteObject signs a DELETE request that removes a single object.
type DeleteObject struct {
	base
	key string
}

// DeleteObject builds a DeleteObject action for the given key. key must not
// be empty.
func (b *Bucket) DeleteObject(key string) (*DeleteObject, error) {
	if err := requireObjectKey("DeleteObject", key); err != nil {
		return nil, err
	}
	return &DeleteObject{base: newBase(b), key: key}, nil
}

// Key returns the object key this action addresses.
func (a *DeleteObject) Key() string { return a.key }

// Method returns MethodDelete.
func (a *DeleteObject) Method() Method { return MethodDelete }

// Sign returns a presigned URL valid for expiresIn, signed for the current time.
func (a *DeleteObject) Sign(creds *Credentials, expiresIn time.Duration) (*url.URL, error) {
	return a.SignWithTime(creds, expiresIn, time.Now())
}

// SignWithTime returns a presigned URL valid for expiresIn, signed for t.
func (a *DeleteObject) SignWithTime(creds *Credentials, expiresIn time.Duration, t time.Time) (*url.URL, error) {
	return sign(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.key), a.query, a.headers, expiresIn, t)
}

// SignHeaders returns the method, URL, and headers for an
// Authorization-header-signed request, signed for the current time.
func (a *DeleteObject) SignHeaders(creds *Credentials) (Method, *url.URL, http.Header, error) {
	return a.SignHeadersWithTime(creds, time.Now())
}

// SignHeadersWithTime returns the method, URL, and headers for an
// Authorization-header-signed request, signed for t.
func (a *DeleteObject) SignHeadersWithTime(creds *Credentials, t time.Time) (Method, *url.URL, http.Header, error) {
	return signHeaders(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.key), a.query, a.headers, t)
}

package s3sig

import (
	"net/http"
	"net/url"
	"time"
)

// PutObject signs a PUT request that uploads an object's content. The
// library never hashes the body — the payload hash is always the
// UNSIGNED-PAYLOAD sentinel — so the caller streams whatever body it likes to
// the signed request.
type PutObject struct {
	base
	key string
}

// PutObject builds a PutObject action for the given key. key must not be
// empty.
func (b *Bucket) PutObject(key string) (*PutObject, error) {
	if err := requireObjectKey("PutObject", key); err != nil {
		return nil, err
	}
	return &PutObject{base: newBase(b), key: key}, nil
}

// Key returns the object key this action addresses.
func (a *PutObject) Key() string { return a.key }

// Method returns MethodPut.
func (a *PutObject) Method() Method { return MethodPut }

// Sign returns a presigned URL valid for expiresIn, signed for the current time.
func (a *PutObject) Sign(creds *Credentials, expiresIn time.Duration) (*url.URL, error) {
	return a.SignWithTime(creds, expiresIn, time.Now())
}

// SignWithTime returns a presigned URL valid for expiresIn, signed for t.
func (a *PutObject) SignWithTime(creds *Credentials, expiresIn time.Duration, t time.Time) (*url.URL, error) {
	return sign(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.key), a.query, a.headers, expiresIn, t)
}

// SignHeaders returns the method, URL, and headers for an
// Authorization-header-signed request, signed for the current time.
func (a *PutObject) SignHeaders(creds *Credentials) (Method, *url.URL, http.Header, error) {
	return a.SignHeadersWithTime(creds, time.Now())
}

// SignHeadersWithTime returns the method, URL, and headers for an
// Authorization-header-signed request, signed for t.
func (a *PutObject) SignHeadersWithTime(creds *Credentials, t time.Time) (Method, *url.URL, http.Header, error) {
	return signHeaders(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.key), a.query, a.headers, t)
}

package s3sig

import (
	"net/http"
	"net/url"
	"time"
)

// CopyObject signs a PUT request that copies an object server-side from a
// source bucket/key into this bucket at destKey, without the caller
// transferring the object's bytes itself.
//
// The copy source is normally carried in the x-amz-copy-source header. A
// presigned URL has no header of its own, though, so AWS accepts the same
// value as a plain query parameter instead for the query-string form:
// SignWithTime folds x-amz-copy-source into the query before canonicalizing,
// so it always ends up in the returned URL, anonymous or authenticated. The
// Authorization-header form has no such restriction, so SignHeadersWithTime
// carries it as a real header instead.
type CopyObject struct {
	base
	destKey      string
	sourceBucket string
	sourceKey    string
}

// CopyObject builds a CopyObject action that copies sourceKey from
// sourceBucket into this bucket at destKey. Neither key may be empty.
func (b *Bucket) CopyObject(destKey, sourceBucket, sourceKey string) (*CopyObject, error) {
	if err := requireObjectKey("CopyObject", destKey); err != nil {
		return nil, err
	}
	if sourceKey == "" {
		return nil, &ParameterError{Action: "CopyObject", Field: "source_key", Value: sourceKey, Err: ErrEmptyObjectKey}
	}

	return &CopyObject{
		base:         newBase(b),
		destKey:      destKey,
		sourceBucket: sourceBucket,
		sourceKey:    sourceKey,
	}, nil
}

// Key returns the destination object key this action addresses.
func (a *CopyObject) Key() string { return a.destKey }

// copySource returns the unescaped "bucket/key" value copied into either the
// x-amz-copy-source query parameter or header, depending on signing form.
func (a *CopyObject) copySource() string {
	return a.sourceBucket + "/" + a.sourceKey
}

// Method returns MethodPut.
func (a *CopyObject) Method() Method { return MethodPut }

// Sign returns a presigned URL valid for expiresIn, signed for the current time.
func (a *CopyObject) Sign(creds *Credentials, expiresIn time.Duration) (*url.URL, error) {
	return a.SignWithTime(creds, expiresIn, time.Now())
}

// SignWithTime returns a presigned URL valid for expiresIn, signed for t.
func (a *CopyObject) SignWithTime(creds *Credentials, expiresIn time.Duration, t time.Time) (*url.URL, error) {
	query := a.query.Clone()
	query.Set("x-amz-copy-source", a.copySource())
	return sign(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.destKey), query, a.headers, expiresIn, t)
}

// SignHeaders returns the method, URL, and headers for an
// Authorization-header-signed request, signed for the current time.
func (a *CopyObject) SignHeaders(creds *Credentials) (Method, *url.URL, http.Header, error) {
	return a.SignHeadersWithTime(creds, time.Now())
}

// SignHeadersWithTime returns the method, URL, and headers for an
// Authorization-header-signed request, signed for t.
func (a *CopyObject) SignHeadersWithTime(creds *Credentials, t time.Time) (Method, *url.URL, http.Header, error) {
	headers := a.headers.Clone()
	headers.Set("x-amz-copy-source", a.copySource())
	return signHeaders(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.destKey), a.query, headers, t)
}

// CopyObjectOutput is the parsed response body of a successful CopyObject
// request.
type CopyObjectOutput struct {
	ETag         string `xml:"ETag"`
	LastModified string `xml:"LastModified"`
}

// ParseCopyObjectResponse parses a CopyObject response body.
func ParseCopyObjectResponse(body []byte) (*CopyObjectOutput, error) {
	return parseXML[CopyObjectOutput]("CopyObjectResult", body)
}

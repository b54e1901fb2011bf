package s3sig

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cloudlena/s3sig/signing"
)

// Action is the capability set every supported S3 operation implements: its
// HTTP method, and the two signing forms (presigned URL, and method + URL +
// headers). Actions with a structured XML response additionally expose a
// ParseResponse-shaped function alongside their type, rather than through
// this interface, since each operation's parsed result has a distinct shape.
type Action interface {
	Method() Method
	Query() *Params
	Headers() *Params
	Sign(creds *Credentials, expiresIn time.Duration) (*url.URL, error)
	SignWithTime(creds *Credentials, expiresIn time.Duration, t time.Time) (*url.URL, error)
	SignHeaders(creds *Credentials) (Method, *url.URL, http.Header, error)
	SignHeadersWithTime(creds *Credentials, t time.Time) (Method, *url.URL, http.Header, error)
}

const (
	minExpires = 1 * time.Second
	maxExpires = 7 * 24 * time.Hour
)

// base is embedded by every action value. It carries the bucket the action
// was built from and the two caller-mutable maps every action exposes.
type base struct {
	bucket  *Bucket
	query   *Params
	headers *Params
}

func newBase(bucket *Bucket) base {
	return base{bucket: bucket, query: NewParams(), headers: NewParams()}
}

// Query returns the action's mutable query-parameter map.
func (b *base) Query() *Params { return b.query }

// Headers returns the action's mutable header map.
func (b *base) Headers() *Params { return b.headers }

// sign implements the presigned-URL form shared by every action: it merges
// the action's extra query parameters into baseURL, and — if creds is
// non-nil — augments the query string with the X-Amz-* presigning parameters,
// canonicalizes, and appends X-Amz-Signature.
func sign(bucket *Bucket, creds *Credentials, method Method, baseURL *url.URL, query, headers *Params, expiresIn time.Duration, t time.Time) (*url.URL, error) {
	if expiresIn < minExpires || expiresIn > maxExpires {
		return nil, &ParameterError{
			Action: string(method),
			Field:  "expires_in",
			Value:  expiresIn.String(),
			Err:    errExpiresOutOfRange,
		}
	}

	u := *baseURL

	extraQuery := paramsToKV(query)

	if creds == nil {
		u.RawQuery = signing.CanonicalQuery(extraQuery)
		return &u, nil
	}

	scope := signing.Scope(t, bucket.Region())
	credential := creds.Key() + "/" + scope

	headerKV := []signing.KV{{Key: "host", Value: bucket.Host()}}
	headerKV = append(headerKV, paramsToKV(headers)...)
	_, signedHeaders := signing.CanonicalHeaders(headerKV)

	presignParams := []signing.KV{
		{Key: "X-Amz-Algorithm", Value: signing.Algorithm},
		{Key: "X-Amz-Credential", Value: credential},
		{Key: "X-Amz-Date", Value: signing.AmzDate(t)},
		{Key: "X-Amz-Expires", Value: strconv.FormatInt(int64(expiresIn/time.Second), 10)},
		{Key: "X-Amz-SignedHeaders", Value: signedHeaders},
	}
	if creds.HasSessionToken() {
		presignParams = append(presignParams, signing.KV{Key: "X-Amz-Security-Token", Value: creds.SessionToken()})
	}

	allQuery := append(extraQuery, presignParams...)
	canonicalQuery := signing.CanonicalQuery(allQuery)
	canonicalHeaders, _ := signing.CanonicalHeaders(headerKV)
	canonicalURI := signing.CanonicalURI(u.Path)

	canonicalRequest := signing.Request(string(method), canonicalURI, canonicalQuery, canonicalHeaders, signedHeaders, signing.UnsignedPayload)
	stringToSign := signing.StringToSign(t, scope, canonicalRequest)
	signingKey := signing.SigningKey(creds.Secret(), t, bucket.Region())
	signature := signing.Signature(signingKey, stringToSign)

	u.RawQuery = canonicalQuery + "&X-Amz-Signature=" + signature
	return &u, nil
}

// signHeaders implements the Authorization-header form shared by every
// action.
func signHeaders(bucket *Bucket, creds *Credentials, method Method, baseURL *url.URL, query, headers *Params, t time.Time) (Method, *url.URL, http.Header, error) {
	u := *baseURL
	u.RawQuery = signing.CanonicalQuery(paramsToKV(query))

	result := make(http.Header)
	headers.Range(func(k, v string) { result.Add(k, v) })

	if creds == nil {
		return method, &u, result, nil
	}

	result.Set("x-amz-date", signing.AmzDate(t))
	result.Set("x-amz-content-sha256", signing.UnsignedPayload)
	if creds.HasSessionToken() {
		result.Set("x-amz-security-token", creds.SessionToken())
	}

	headerKV := []signing.KV{{Key: "host", Value: bucket.Host()}}
	for name, values := range result {
		for _, v := range values {
			headerKV = append(headerKV, signing.KV{Key: name, Value: v})
		}
	}

	canonicalHeaders, signedHeaders := signing.CanonicalHeaders(headerKV)
	canonicalQuery := signing.CanonicalQuery(paramsToKV(query))
	canonicalURI := signing.CanonicalURI(u.Path)

	canonicalRequest := signing.Request(string(method), canonicalURI, canonicalQuery, canonicalHeaders, signedHeaders, signing.UnsignedPayload)

	scope := signing.Scope(t, bucket.Region())
	stringToSign := signing.StringToSign(t, scope, canonicalRequest)
	signingKey := signing.SigningKey(creds.Secret(), t, bucket.Region())
	signature := signing.Signature(signingKey, stringToSign)

	result.Set("Authorization", signing.AuthorizationHeader(creds.Key(), scope, signedHeaders, signature))

	return method, &u, result, nil
}

func paramsToKV(p *Params) []signing.KV {
	var kv []signing.KV
	p.Range(func(k, v string) { kv = append(kv, signing.KV{Key: k, Value: v}) })
	return kv
}

var errExpiresOutOfRange = Error("expiry must be between 1 second and 604800 seconds (7 days)")

// Compile-time checks that every action satisfies Action.
var (
	_ Action = (*CreateBucket)(nil)
	_ Action = (*DeleteBucket)(nil)
	_ Action = (*HeadBucket)(nil)
	_ Action = (*HeadObject)(nil)
	_ Action = (*GetObject)(nil)
	_ Action = (*PutObject)(nil)
	_ Action = (*DeleteObject)(nil)
	_ Action = (*CopyObject)(nil)
	_ Action = (*DeleteObjects)(nil)
	_ Action = (*ListObjectsV2)(nil)
	_ Action = (*CreateMultipartUpload)(nil)
	_ Action = (*UploadPart)(nil)
	_ Action = (*ListParts)(nil)
	_ Action = (*CompleteMultipartUpload)(nil)
	_ Action = (*AbortMultipartUpload)(nil)
	_ Action = (*GetBucketPolicy)(nil)
)

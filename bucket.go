package s3sig

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/cloudlena/s3sig/signing"
)

// URLStyle selects how a Bucket's object URLs are addressed.
type URLStyle int

const (
	// VirtualHost addresses objects as scheme://name.host[:port]/key, the
	// style AWS recommends for real S3 buckets.
	VirtualHost URLStyle = iota
	// Path addresses objects as scheme://host[:port]/name/key, required by
	// most S3-compatible servers (MinIO, etc.) that don't own a wildcard
	// TLS certificate for arbitrary bucket subdomains.
	Path
)

// virtualHostBucketName matches S3's DNS-label bucket-naming rules as applied
// to VirtualHost addressing: lowercase alphanumerics and hyphens, 3-63
// characters, no leading/trailing hyphen, and critically no dots (a dotted
// name defeats wildcard TLS certificate matching against *.s3.amazonaws.com).
var virtualHostBucketName = regexp.MustCompile(`^[a-z0-9][a-z0-9\-]{1,61}[a-z0-9]$`)

// Bucket is an immutable description of where S3 requests for a given bucket
// should be addressed: an endpoint, a URL style, a bucket name, and a region.
// Bucket values are safe to share across goroutines.
type Bucket struct {
	endpoint *url.URL
	urlStyle URLStyle
	name     string
	region   string
}

// NewBucket validates and constructs a Bucket. endpoint must be an absolute
// URL with a scheme and host. Under VirtualHost, name must be a DNS-valid,
// dot-free bucket name; under Path, name is used as the first path segment
// with no further validation.
func NewBucket(endpoint, name, region string, style URLStyle) (*Bucket, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, &ConfigurationError{Field: "endpoint", Value: endpoint, Err: err}
	}
	if u.Scheme == "" {
		return nil, &ConfigurationError{Field: "endpoint", Value: endpoint, Err: ErrMissingScheme}
	}
	if u.Host == "" {
		return nil, &ConfigurationError{Field: "endpoint", Value: endpoint, Err: ErrMissingHost}
	}
	if style == VirtualHost && !virtualHostBucketName.MatchString(name) {
		return nil, &ConfigurationError{
			Field: "name",
			Value: name,
			Err:   fmt.Errorf("not a valid DNS label for virtual-host-style addressing"),
		}
	}

	return &Bucket{endpoint: u, urlStyle: style, name: name, region: region}, nil
}

// Name returns the bucket name.
func (b *Bucket) Name() string { return b.name }

// Region returns the bucket's AWS region.
func (b *Bucket) Region() string { return b.region }

// URLStyle returns the bucket's addressing style.
func (b *Bucket) URLStyle() URLStyle { return b.urlStyle }

// Endpoint returns the bucket's configured endpoint URL.
func (b *Bucket) Endpoint() *url.URL {
	cp := *b.endpoint
	return &cp
}

// Host returns the canonical "host" header value for requests against this
// bucket: the endpoint host, prefixed with the bucket name under VirtualHost.
func (b *Bucket) Host() string {
	if b.urlStyle == VirtualHost {
		return b.name + "." + b.endpoint.Host
	}
	return b.endpoint.Host
}

// BaseURL returns the absolute URL for the bucket itself (key == "") or for
// an object within it, with each "/"-delimited path segment of key
// percent-encoded individually.
func (b *Bucket) BaseURL(key string) *url.URL {
	u := *b.endpoint
	u.Host = b.Host()

	escapedKey := signing.JoinObjectKey(key)

	switch b.urlStyle {
	case Path:
		if escapedKey != "" {
			u.Path = "/" + b.name + "/"
			u.RawPath = u.Path
			appendRawPath(&u, escapedKey)
		} else {
			u.Path = "/" + b.name
			u.RawPath = u.Path
		}
	default: // VirtualHost
		if escapedKey != "" {
			u.Path = "/"
			u.RawPath = "/"
			appendRawPath(&u, escapedKey)
		} else {
			u.Path = "/"
			u.RawPath = "/"
		}
	}
	u.RawQuery = ""
	return &u
}

// appendRawPath appends an already-percent-encoded path suffix to u,
// keeping RawPath and Path in sync so url.URL.String() emits exactly the
// encoding the caller produced rather than Go's default escaping rules.
func appendRawPath(u *url.URL, escapedSuffix string) {
	decoded, err := url.PathUnescape(escapedSuffix)
	if err != nil {
		decoded = escapedSuffix
	}
	u.Path += decoded
	u.RawPath += escapedSuffix
}

package signing

import (
	"strings"

	"github.com/aws/smithy-go/encoding/httpbinding"
)

const upperhex = "0123456789ABCDEF"

// EscapeQuery percent-encodes s for use as a SigV4 canonical query key or
// value: every byte outside A-Z a-z 0-9 - _ . ~ is percent-encoded, and space
// always becomes %20, never "+". This differs from net/url's QueryEscape,
// which encodes space as "+" and therefore cannot produce SigV4-compliant
// output directly.
func EscapeQuery(s string) string {
	var needsEscape bool
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xF])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == '~':
		return true
	default:
		return false
	}
}

// EscapePathSegment percent-encodes a single path segment using the same
// unreserved set as EscapeQuery. The "/" separators between segments are
// never produced by this function; callers split a path into segments, escape
// each one, and rejoin with "/".
func EscapePathSegment(segment string) string {
	return EscapeQuery(segment)
}

// CanonicalURI builds the canonical URI component of a SigV4 canonical
// request from a raw URL path. Amazon S3 requires single-pass encoding (in
// contrast to most other SigV4 services, which double-encode): the path is
// escaped exactly once, via smithy-go's httpbinding.EscapePath with
// encodeSep=false, which is the same routine AWS's own v4 signer uses for S3.
// An empty path canonicalizes to "/".
func CanonicalURI(path string) string {
	if path == "" {
		return "/"
	}
	return httpbinding.EscapePath(path, false)
}

// JoinObjectKey builds a URL path from a bucket-relative key, percent-encoding
// each "/"-delimited segment individually so that a literal "/" inside a key
// is preserved as a path separator rather than collapsed or double-escaped.
func JoinObjectKey(key string) string {
	if key == "" {
		return ""
	}
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = EscapePathSegment(seg)
	}
	return strings.Join(segments, "/")
}

package signing

import (
	"sort"
	"strings"
)

// KV is an ordered key/value pair used to build canonical query strings and
// canonical headers. Insertion order is not observable in the canonicalized
// output — both query and header canonicalization always sort — but callers
// pass KV slices rather than maps so that building them is deterministic and
// easy to test.
type KV struct {
	Key   string
	Value string
}

// UnsignedPayload is the literal payload-hash sentinel this package always
// uses in place of a real SHA-256 body hash, per Amazon S3's convention for
// presigned URLs and unsigned-payload header-signed requests.
const UnsignedPayload = "UNSIGNED-PAYLOAD"

// CanonicalQuery builds the canonical query string: params sorted by (key,
// value) byte order, each key and value percent-encoded with the SigV4 query
// set, joined as "k=v" pairs separated by "&". A parameter with an empty
// value still emits "k=".
func CanonicalQuery(params []KV) string {
	sorted := make([]KV, len(params))
	copy(sorted, params)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Key != sorted[j].Key {
			return sorted[i].Key < sorted[j].Key
		}
		return sorted[i].Value < sorted[j].Value
	})

	var b strings.Builder
	for i, kv := range sorted {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(EscapeQuery(kv.Key))
		b.WriteByte('=')
		b.WriteString(EscapeQuery(kv.Value))
	}
	return b.String()
}

// CanonicalHeaders builds the canonical headers block and the signed-headers
// list. headers must already be restricted to the set that participates in
// signing (host and every x-amz-* header, plus any caller-added headers); this
// function lowercases names, trims and collapses internal whitespace runs in
// values, and sorts by lowercased name.
func CanonicalHeaders(headers []KV) (canonicalHeaders string, signedHeaders string) {
	lowered := make([]KV, len(headers))
	for i, kv := range headers {
		lowered[i] = KV{Key: strings.ToLower(kv.Key), Value: collapseWhitespace(kv.Value)}
	}
	sort.Slice(lowered, func(i, j int) bool { return lowered[i].Key < lowered[j].Key })

	var headerBlock strings.Builder
	names := make([]string, len(lowered))
	for i, kv := range lowered {
		headerBlock.WriteString(kv.Key)
		headerBlock.WriteByte(':')
		headerBlock.WriteString(kv.Value)
		headerBlock.WriteByte('\n')
		names[i] = kv.Key
	}
	return headerBlock.String(), strings.Join(names, ";")
}

// collapseWhitespace trims leading/trailing whitespace and collapses internal
// runs of whitespace to a single space, matching SigV4's canonical-header
// value normalization.
func collapseWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

// Request builds the canonical request: method, canonical URI, canonical
// query string, canonical headers, signed headers, and payload hash, joined
// by "\n" with no trailing newline.
func Request(method, canonicalURI, canonicalQuery, canonicalHeaders, signedHeaders, payloadHash string) string {
	return strings.ToUpper(method) + "\n" +
		canonicalURI + "\n" +
		canonicalQuery + "\n" +
		canonicalHeaders + "\n" +
		signedHeaders + "\n" +
		payloadHash
}

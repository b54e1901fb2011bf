// Package signing implements the byte-exact canonicalization and HMAC-SHA256
// signature derivation required by AWS Signature Version 4, scoped to the
// subset Amazon S3 requires: single-pass URI escaping, the UNSIGNED-PAYLOAD
// payload hash, and both query-string (presigned URL) and Authorization-header
// signature forms.
//
// This package has no notion of an S3 "action" or "bucket" — it operates purely
// on methods, URLs, headers, and credentials, mirroring the split between
// general-purpose SigV4 signing and S3-specific request shaping found in AWS's
// own SDKs.
package signing

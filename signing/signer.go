package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Algorithm is the SigV4 algorithm identifier used throughout canonical
// requests, string-to-sign, and the Authorization header.
const Algorithm = "AWS4-HMAC-SHA256"

// StringToSign builds the string-to-sign from a signing timestamp, credential
// scope, and canonical request.
func StringToSign(t time.Time, scope, canonicalRequest string) string {
	sum := sha256.Sum256([]byte(canonicalRequest))
	return Algorithm + "\n" +
		AmzDate(t) + "\n" +
		scope + "\n" +
		hex.EncodeToString(sum[:])
}

// SigningKey derives the SigV4 signing key from a secret access key, signing
// timestamp, and region via the four-step HMAC-SHA256 chain:
// HMAC(HMAC(HMAC(HMAC("AWS4"+secret, datestamp), region), "s3"), "aws4_request").
func SigningKey(secret string, t time.Time, region string) []byte {
	k1 := hmacSHA256([]byte("AWS4"+secret), DateStamp(t))
	k2 := hmacSHA256(k1, region)
	k3 := hmacSHA256(k2, "s3")
	return hmacSHA256(k3, "aws4_request")
}

// Signature computes the final lowercase hex SigV4 signature given a derived
// signing key and a string-to-sign.
func Signature(signingKey []byte, stringToSign string) string {
	mac := hmacSHA256(signingKey, stringToSign)
	return hex.EncodeToString(mac)
}

func hmacSHA256(key []byte, data string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(data))
	return mac.Sum(nil)
}

// AuthorizationHeader builds the value of the Authorization header for
// header-form signing.
func AuthorizationHeader(accessKeyID, scope, signedHeaders, signature string) string {
	return Algorithm + " Credential=" + accessKeyID + "/" + scope +
		", SignedHeaders=" + signedHeaders +
		", Signature=" + signature
}

package s3sig

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	minPartNumber = 1
	maxPartNumber = 10000
)

// UploadPart signs a PUT request that uploads a single part of a multipart
// upload. There is no response parser for UploadPart: the caller extracts
// the part's ETag from the response's ETag header.
type UploadPart struct {
	base
	key        string
	partNumber int
	uploadID   string
}

// UploadPart builds an UploadPart action. key and uploadID must not be
// empty; partNumber must be between 1 and 10000 inclusive.
func (b *Bucket) UploadPart(key string, partNumber int, uploadID string) (*UploadPart, error) {
	if err := requireObjectKey("UploadPart", key); err != nil {
		return nil, err
	}
	if partNumber < minPartNumber || partNumber > maxPartNumber {
		return nil, &ParameterError{
			Action: "UploadPart",
			Field:  "part_number",
			Value:  strconv.Itoa(partNumber),
			Err:    fmt.Errorf("must be between %d and %d", minPartNumber, maxPartNumber),
		}
	}
	if uploadID == "" {
		return nil, &ParameterError{Action: "UploadPart", Field: "upload_id", Value: uploadID, Err: ErrEmptyUploadID}
	}

	a := &UploadPart{base: newBase(b), key: key, partNumber: partNumber, uploadID: uploadID}
	a.query.Set("partNumber", strconv.Itoa(partNumber))
	a.query.Set("uploadId", uploadID)
	return a, nil
}

// Key returns the object key this action addresses.
func (a *UploadPart) Key() string { return a.key }

// PartNumber returns the 1-based part number this action addresses.
func (a *UploadPart) PartNumber() int { return a.partNumber }

// UploadID returns the multipart upload id this part belongs to.
func (a *UploadPart) UploadID() string { return a.uploadID }

// Method returns MethodPut.
func (a *UploadPart) Method() Method { return MethodPut }

// Sign returns a presigned URL valid for expiresIn, signed for the current time.
func (a *UploadPart) Sign(creds *Credentials, expiresIn time.Duration) (*url.URL, error) {
	return a.SignWithTime(creds, expiresIn, time.Now())
}

// SignWithTime returns a presigned URL valid for expiresIn, signed for t.
func (a *UploadPart) SignWithTime(creds *Credentials, expiresIn time.Duration, t time.Time) (*url.URL, error) {
	return sign(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.key), a.query, a.headers, expiresIn, t)
}

// SignHeaders returns the method, URL, and headers for an
// Authorization-header-signed request, signed for the current time.
func (a *UploadPart) SignHeaders(creds *Credentials) (Method, *url.URL, http.Header, error) {
	return a.SignHeadersWithTime(creds, time.Now())
}

// SignHeadersWithTime returns the method, URL, and headers for an
// Authorization-header-signed request, signed for t.
func (a *UploadPart) SignHeadersWithTime(creds *Credentials, t time.Time) (Method, *url.URL, http.Header, error) {
	return signHeaders(a.bucket, creds, a.Method(), a.bucket.BaseURL(a.key), a.query, a.headers, t)
}

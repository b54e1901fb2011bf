package s3sig_test

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudlena/s3sig"
)

func TestParseListObjectsV2ResponseDecodesURLEncodedFields(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Name>examplebucket</Name>
  <Prefix>foo%2Fbar%20baz</Prefix>
  <KeyCount>1</KeyCount>
  <MaxKeys>1000</MaxKeys>
  <IsTruncated>false</IsTruncated>
  <EncodingType>url</EncodingType>
  <Contents>
    <Key>foo%2Fbar%20baz/qux</Key>
    <LastModified>2024-01-02T03:04:05.000Z</LastModified>
    <ETag>"abc"</ETag>
    <Size>42</Size>
    <StorageClass>STANDARD</StorageClass>
  </Contents>
</ListBucketResult>`)

	out, err := s3sig.ParseListObjectsV2Response(body)
	require.NoError(t, err)

	assert.Equal(t, "examplebucket", out.Name)
	assert.Equal(t, "foo/bar baz", out.Prefix)
	require.Len(t, out.Contents, 1)
	assert.Equal(t, "foo/bar baz/qux", out.Contents[0].Key)
	assert.Equal(t, int64(42), out.Contents[0].Size)
}

func TestParseListObjectsV2ResponseIgnoresUnknownElements(t *testing.T) {
	body := []byte(`<ListBucketResult>
  <Name>examplebucket</Name>
  <KeyCount>0</KeyCount>
  <MaxKeys>1000</MaxKeys>
  <IsTruncated>false</IsTruncated>
  <SomeFutureField>ignored</SomeFutureField>
</ListBucketResult>`)

	out, err := s3sig.ParseListObjectsV2Response(body)
	require.NoError(t, err)
	assert.Equal(t, "examplebucket", out.Name)
}

func TestParseListObjectsV2ResponseMalformedXML(t *testing.T) {
	_, err := s3sig.ParseListObjectsV2Response([]byte(`<ListBucketResult><Name>oops`))
	require.Error(t, err)
	assert.True(t, s3sig.IsParseError(err))
}

func TestParseCreateMultipartUploadResponse(t *testing.T) {
	body := []byte(`<InitiateMultipartUploadResult>
  <Bucket>examplebucket</Bucket>
  <Key>big.bin</Key>
  <UploadId>EXAMPLEJZ6e0YupT2h66iePQCc9IEbYbDUy4RTpMeoSMLPRp8Z5o1u8feSRonpvnWsKKG35tI2LB9VDPiCgTy.Gq2VxQLYjZa</UploadId>
</InitiateMultipartUploadResult>`)

	out, err := s3sig.ParseCreateMultipartUploadResponse(body)
	require.NoError(t, err)
	assert.Equal(t, "examplebucket", out.Bucket)
	assert.Equal(t, "big.bin", out.Key)
	assert.NotEmpty(t, out.UploadID)
}

func TestParseListPartsResponse(t *testing.T) {
	body := []byte(`<ListPartsResult>
  <Bucket>examplebucket</Bucket>
  <Key>big.bin</Key>
  <UploadId>U</UploadId>
  <MaxParts>1000</MaxParts>
  <IsTruncated>false</IsTruncated>
  <Part>
    <PartNumber>1</PartNumber>
    <LastModified>2024-01-02T03:04:05.000Z</LastModified>
    <ETag>"a"</ETag>
    <Size>5242880</Size>
  </Part>
  <Part>
    <PartNumber>2</PartNumber>
    <LastModified>2024-01-02T03:05:05.000Z</LastModified>
    <ETag>"b"</ETag>
    <Size>1024</Size>
  </Part>
</ListPartsResult>`)

	out, err := s3sig.ParseListPartsResponse(body)
	require.NoError(t, err)
	require.Len(t, out.Parts, 2)
	assert.Equal(t, 1, out.Parts[0].PartNumber)
	assert.Equal(t, `"a"`, out.Parts[0].ETag)
	assert.Equal(t, int64(1024), out.Parts[1].Size)
}

func TestParseCompleteMultipartUploadResponse(t *testing.T) {
	body := []byte(`<CompleteMultipartUploadResult>
  <Location>https://examplebucket.s3.amazonaws.com/big.bin</Location>
  <Bucket>examplebucket</Bucket>
  <Key>big.bin</Key>
  <ETag>"final-etag"</ETag>
</CompleteMultipartUploadResult>`)

	out, err := s3sig.ParseCompleteMultipartUploadResponse(body)
	require.NoError(t, err)
	assert.Equal(t, "big.bin", out.Key)
	assert.Equal(t, `"final-etag"`, out.ETag)
}

func TestParseDeleteObjectsResponse(t *testing.T) {
	body := []byte(`<DeleteResult>
  <Deleted><Key>a</Key></Deleted>
  <Deleted><Key>b</Key><VersionId>v1</VersionId></Deleted>
  <Error><Key>c</Key><Code>AccessDenied</Code><Message>denied</Message></Error>
</DeleteResult>`)

	out, err := s3sig.ParseDeleteObjectsResponse(body)
	require.NoError(t, err)
	require.Len(t, out.Deleted, 2)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "c", out.Errors[0].Key)
	assert.Equal(t, "AccessDenied", out.Errors[0].Code)
}

func TestCompleteMultipartUploadXMLRoundTrip(t *testing.T) {
	bucket, err := s3sig.NewBucket("https://s3.amazonaws.com", "examplebucket", "us-east-1", s3sig.VirtualHost)
	require.NoError(t, err)

	action, err := bucket.CompleteMultipartUpload("big.bin", "U", []s3sig.CompletedPart{
		{PartNumber: 1, ETag: "etag-a"},
		{PartNumber: 2, ETag: "etag-b"},
	})
	require.NoError(t, err)

	body, err := action.Body()
	require.NoError(t, err)

	var reparsed struct {
		Parts []struct {
			PartNumber int    `xml:"PartNumber"`
			ETag       string `xml:"ETag"`
		} `xml:"Part"`
	}
	require.NoError(t, xml.Unmarshal(body, &reparsed))

	require.Len(t, reparsed.Parts, 2)
	assert.Equal(t, 1, reparsed.Parts[0].PartNumber)
	assert.Equal(t, "etag-a", reparsed.Parts[0].ETag)
	assert.Equal(t, 2, reparsed.Parts[1].PartNumber)
	assert.Equal(t, "etag-b", reparsed.Parts[1].ETag)
}

package s3sig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudlena/s3sig"
)

func TestNewBucketRejectsMissingScheme(t *testing.T) {
	_, err := s3sig.NewBucket("s3.amazonaws.com", "examplebucket", "us-east-1", s3sig.Path)
	require.Error(t, err)
	assert.True(t, s3sig.IsConfigurationError(err))
}

func TestNewBucketRejectsMissingHost(t *testing.T) {
	_, err := s3sig.NewBucket("https://", "examplebucket", "us-east-1", s3sig.Path)
	require.Error(t, err)
	assert.True(t, s3sig.IsConfigurationError(err))
}

func TestNewBucketRejectsDottedNameUnderVirtualHost(t *testing.T) {
	_, err := s3sig.NewBucket("https://s3.amazonaws.com", "my.bucket", "us-east-1", s3sig.VirtualHost)
	require.Error(t, err)
	assert.True(t, s3sig.IsConfigurationError(err))

	_, err = s3sig.NewBucket("https://s3.amazonaws.com", "my.bucket", "us-east-1", s3sig.Path)
	assert.NoError(t, err)
}

func TestBucketHostVirtualHostVsPath(t *testing.T) {
	vhost, err := s3sig.NewBucket("https://s3.amazonaws.com", "examplebucket", "us-east-1", s3sig.VirtualHost)
	require.NoError(t, err)
	assert.Equal(t, "examplebucket.s3.amazonaws.com", vhost.Host())

	pathStyle, err := s3sig.NewBucket("https://s3.amazonaws.com", "examplebucket", "us-east-1", s3sig.Path)
	require.NoError(t, err)
	assert.Equal(t, "s3.amazonaws.com", pathStyle.Host())
}

func TestBucketBaseURL(t *testing.T) {
	vhost, err := s3sig.NewBucket("https://s3.amazonaws.com", "examplebucket", "us-east-1", s3sig.VirtualHost)
	require.NoError(t, err)
	assert.Equal(t, "https://examplebucket.s3.amazonaws.com/test.txt", vhost.BaseURL("test.txt").String())
	assert.Equal(t, "https://examplebucket.s3.amazonaws.com/", vhost.BaseURL("").String())

	pathStyle, err := s3sig.NewBucket("https://s3.amazonaws.com", "examplebucket", "us-east-1", s3sig.Path)
	require.NoError(t, err)
	assert.Equal(t, "https://s3.amazonaws.com/examplebucket/test.txt", pathStyle.BaseURL("test.txt").String())
	assert.Equal(t, "https://s3.amazonaws.com/examplebucket", pathStyle.BaseURL("").String())
}

func TestBucketBaseURLEscapesKeySegments(t *testing.T) {
	vhost, err := s3sig.NewBucket("https://s3.amazonaws.com", "examplebucket", "us-east-1", s3sig.VirtualHost)
	require.NoError(t, err)
	u := vhost.BaseURL("foo/bar baz.txt")
	assert.Equal(t, "/foo/bar%20baz.txt", u.EscapedPath())
	assert.Equal(t, "/foo/bar baz.txt", u.Path)
}

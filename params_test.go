package s3sig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudlena/s3sig"
)

func TestParamsSetGetDel(t *testing.T) {
	p := s3sig.NewParams()
	p.Set("a", "1")
	p.Set("a", "2")
	assert.Equal(t, "2", p.Get("a"))
	assert.Equal(t, 1, p.Len())

	p.Del("a")
	assert.False(t, p.Has("a"))
	assert.Equal(t, 0, p.Len())
}

func TestParamsAddPreservesMultipleValues(t *testing.T) {
	p := s3sig.NewParams()
	p.Add("k", "1")
	p.Add("k", "2")

	var got []string
	p.Range(func(k, v string) { got = append(got, k+"="+v) })
	assert.Equal(t, []string{"k=1", "k=2"}, got)
}

func TestParamsClone(t *testing.T) {
	p := s3sig.NewParams()
	p.Set("a", "1")
	c := p.Clone()
	c.Set("a", "2")
	assert.Equal(t, "1", p.Get("a"))
	assert.Equal(t, "2", c.Get("a"))
}

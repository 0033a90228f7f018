package dataurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBase64(t *testing.T) {
	d, err := Parse("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/png", d.MediaType)
	assert.True(t, d.Base64)
	assert.Equal(t, []byte("hello"), d.Data)
}

func TestParsePercentEncoded(t *testing.T) {
	d, err := Parse("data:,A%20brief%20note")
	require.NoError(t, err)
	assert.Equal(t, DefaultMediaType, d.MediaType)
	assert.Equal(t, "US-ASCII", d.Params["charset"])
	assert.False(t, d.Base64)
	assert.Equal(t, []byte("A brief note"), d.Data)
}

func TestParseWithParams(t *testing.T) {
	d, err := Parse("data:text/plain;charset=utf-8,caf%C3%A9")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", d.MediaType)
	assert.Equal(t, "utf-8", d.Params["charset"])
	assert.Equal(t, "café", string(d.Data))
}

func TestParseParamsWithoutType(t *testing.T) {
	// RFC 2397 allows parameters with the type omitted
	d, err := Parse("data:;charset=utf-8,hi")
	require.NoError(t, err)
	assert.Equal(t, DefaultMediaType, d.MediaType)
	assert.Equal(t, "utf-8", d.Params["charset"])
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("http://example.com")
	assert.ErrorIs(t, err, ErrInvalidScheme)

	_, err = Parse("data:text/plain;base64")
	assert.ErrorIs(t, err, ErrMissingComma)

	_, err = Parse("data:text/plain;base64,not!!!base64")
	assert.Error(t, err)

	_, err = Parse("data:bogus/type/extra,x")
	assert.Error(t, err)
}

func TestParseEmptyPayload(t *testing.T) {
	d, err := Parse("data:,")
	require.NoError(t, err)
	assert.Empty(t, d.Data)
}

func TestRoundTrip(t *testing.T) {
	orig := New([]byte{0x89, 'P', 'N', 'G', 0x00, 0xFF}, "image/png")
	parsed, err := Parse(orig.String())
	require.NoError(t, err)
	assert.Equal(t, orig.MediaType, parsed.MediaType)
	assert.Equal(t, orig.Data, parsed.Data)
	assert.True(t, parsed.Base64)
}

func TestRoundTripPercent(t *testing.T) {
	d := &DataURL{MediaType: "text/plain", Data: []byte("hello world & more")}
	parsed, err := Parse(d.String())
	require.NoError(t, err)
	assert.Equal(t, d.Data, parsed.Data)
	assert.False(t, parsed.Base64)
}

func TestNewDefaults(t *testing.T) {
	d := New([]byte("x"), "")
	assert.Equal(t, DefaultMediaType, d.MediaType)
	assert.Equal(t, "data:text/plain;base64,eA==", d.String())
}

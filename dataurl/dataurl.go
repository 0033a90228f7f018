// Package dataurl parses and renders RFC 2397 "data:" URLs, the inline form
// used to embed small payloads in places that expect a URL:
//
//	data:[<mediatype>][;base64],<data>
//
// The media type defaults to "text/plain;charset=US-ASCII" when omitted, as
// the RFC specifies. Payloads are carried either base64-encoded or
// percent-encoded ("URL escaped").
package dataurl

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"strings"
)

const (
	scheme = "data:"

	// DefaultMediaType applies when a data URL names no media type.
	DefaultMediaType = "text/plain"
)

// defaultParams are the parameters implied by an absent media type.
var defaultParams = map[string]string{"charset": "US-ASCII"}

// Sentinel parse errors. Errors from the payload decoders wrap these with
// detail.
var (
	ErrInvalidScheme = errors.New("dataurl: missing data: scheme")
	ErrMissingComma  = errors.New("dataurl: missing comma separating metadata from payload")
)

// DataURL is a decoded data: URL.
type DataURL struct {
	// MediaType is the payload's MIME type, e.g. "image/png", without
	// parameters.
	MediaType string
	// Params carries media type parameters such as charset.
	Params map[string]string
	// Base64 records which payload encoding the textual form uses.
	Base64 bool
	// Data is the decoded payload.
	Data []byte
}

// New returns a DataURL carrying data under mediaType, rendered in base64.
// An empty mediaType uses the RFC default.
func New(data []byte, mediaType string) *DataURL {
	if mediaType == "" {
		mediaType = DefaultMediaType
	}
	return &DataURL{MediaType: mediaType, Base64: true, Data: data}
}

// Parse decodes s as an RFC 2397 data URL.
func Parse(s string) (*DataURL, error) {
	if !strings.HasPrefix(s, scheme) {
		return nil, ErrInvalidScheme
	}
	meta, payload, found := strings.Cut(s[len(scheme):], ",")
	if !found {
		return nil, ErrMissingComma
	}

	d := &DataURL{}
	if b64, ok := strings.CutSuffix(meta, ";base64"); ok {
		d.Base64 = true
		meta = b64
	}

	if meta == "" {
		d.MediaType = DefaultMediaType
		d.Params = defaultParams
	} else {
		// "data:;charset=utf-8,..." names parameters without a type;
		// mime.ParseMediaType needs the type present to parse them.
		if strings.HasPrefix(meta, ";") {
			meta = DefaultMediaType + meta
		}
		mt, params, err := mime.ParseMediaType(meta)
		if err != nil {
			return nil, fmt.Errorf("dataurl: bad media type %q: %w", meta, err)
		}
		d.MediaType = mt
		d.Params = params
	}

	var err error
	if d.Base64 {
		d.Data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("dataurl: bad base64 payload: %w", err)
		}
	} else {
		text, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("dataurl: bad percent-encoded payload: %w", err)
		}
		d.Data = []byte(text)
	}
	return d, nil
}

// String renders the URL in its textual form. Base64 selects the payload
// encoding; parameters are rendered in mime.FormatMediaType's order.
func (d *DataURL) String() string {
	var b strings.Builder
	b.WriteString(scheme)
	if d.MediaType != "" {
		b.WriteString(mime.FormatMediaType(d.MediaType, d.Params))
	}
	if d.Base64 {
		b.WriteString(";base64,")
		b.WriteString(base64.StdEncoding.EncodeToString(d.Data))
	} else {
		b.WriteByte(',')
		b.WriteString(url.PathEscape(string(d.Data)))
	}
	return b.String()
}

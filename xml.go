package s3sig

import (
	"bytes"
	"encoding/xml"
)

// parseXML decodes body into a value of type T using a namespace-insensitive,
// unknown-element-tolerant XML decoder (S3 responses sometimes declare a
// default XML namespace; encoding/xml matches elements by local name when the
// struct tags carry no namespace, so no special handling is needed beyond
// using the standard decoder directly). elementHint names the expected root
// element, used only to annotate a returned *ParseError.
func parseXML[T any](elementHint string, body []byte) (*T, error) {
	var v T
	dec := xml.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&v); err != nil {
		return nil, &ParseError{Element: elementHint, Offset: dec.InputOffset(), Err: err}
	}
	return &v, nil
}

// Package json wraps json-iterator with creasty/defaults so decoded values
// always carry their declared defaults.
package json

import (
	"io"

	"github.com/creasty/defaults"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Encoder wraps jsoniter's encoder, applying defaults before encoding.
type Encoder struct {
	*jsoniter.Encoder
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{Encoder: json.NewEncoder(w)}
}

func (e *Encoder) Encode(v any) error {
	if err := defaults.Set(v); err != nil {
		return err
	}
	return e.Encoder.Encode(v)
}

// Decoder wraps jsoniter's decoder, applying defaults after decoding so
// omitted fields fall back to their declared values.
type Decoder struct {
	*jsoniter.Decoder
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{Decoder: json.NewDecoder(r)}
}

func (d *Decoder) Decode(v any) error {
	if err := d.Decoder.Decode(v); err != nil {
		return err
	}
	return defaults.Set(v)
}

func Marshal(v any) ([]byte, error) {
	if err := defaults.Set(v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	if err := defaults.Set(v); err != nil {
		return nil, err
	}
	return json.MarshalIndent(v, prefix, indent)
}

func Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	return defaults.Set(v)
}

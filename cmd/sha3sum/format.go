package main

import (
	"encoding/hex"

	"github.com/multiformats/go-multibase"
)

// newEncoder returns the function which renders digests in the given format. hex produces bare lowercase hexadecimal;
// every other format is a multibase encoding name and includes its multibase prefix.
func newEncoder(format string) (func([]byte) string, error) {
	if format == "hex" {
		return hex.EncodeToString, nil
	}

	enc, err := multibase.EncoderByName(format)
	if err != nil {
		return nil, err
	}
	return enc.Encode, nil
}

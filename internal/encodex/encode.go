// Package encodex converts file content into the transport-safe text form the
// remote endpoint expects in the file0 field, and back.
package encodex

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/dmitrijs2005/eieluploader/internal/common"
)

// EncodeBytes returns the standard, padded base64 encoding of b.
func EncodeBytes(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Encode reads r to the end and returns the encoded content.
// Any read failure is reported as common.ErrEncoding.
func Encode(r io.Reader) (string, error) {
	// reading everything first: the endpoint takes the payload as one field
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: read: %v", common.ErrEncoding, err)
	}
	return EncodeBytes(b), nil
}

// Decode is the inverse of EncodeBytes.
func Decode(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", common.ErrEncoding, err)
	}
	return b, nil
}

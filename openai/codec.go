package openai

import (
	"encoding/base64"
	"os"
	"strings"
)

const dataURLMarker = ";base64,"

// EncodeBase64 encodes bytes with the standard RFC 4648 alphabet, unwrapped.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 decodes a standard-alphabet base64 string. Malformed input
// (bad character, wrong padding) yields a *DecodeError.
func DecodeBase64(encoded string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, &DecodeError{SDKError: SDKError{Message: "invalid base64 input", Cause: err}}
	}
	return data, nil
}

// BytesToDataURL renders bytes as a data: URL with the given MIME type.
func BytesToDataURL(data []byte, mimeType string) string {
	return "data:" + mimeType + dataURLMarker + EncodeBase64(data)
}

// SplitDataURL splits a data: URL into its MIME type and base64 payload
// without decoding the payload. The input must carry the "data:" prefix and
// the ";base64," marker; anything else yields a *FormatError.
func SplitDataURL(dataURL string) (mimeType, b64 string, err error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", "", &FormatError{SDKError: SDKError{Message: "not a data URL (missing data: prefix)"}}
	}
	mimeType, b64, ok = strings.Cut(rest, dataURLMarker)
	if !ok {
		return "", "", &FormatError{SDKError: SDKError{Message: "not a data URL (missing ;base64, marker)"}}
	}
	return mimeType, b64, nil
}

// DataURLToBytes decodes the payload of a data: URL and reports its MIME type.
func DataURLToBytes(dataURL string) ([]byte, string, error) {
	mimeType, b64, err := SplitDataURL(dataURL)
	if err != nil {
		return nil, "", err
	}
	data, err := DecodeBase64(b64)
	if err != nil {
		return nil, "", err
	}
	return data, mimeType, nil
}

// FileToDataURL reads a file and renders it as a data: URL, sniffing the
// MIME type from the file extension.
func FileToDataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{SDKError: SDKError{Message: "reading " + path, Cause: err}, Path: path}
	}
	return BytesToDataURL(data, GuessMimeType(path)), nil
}

// SaveBase64ToFile decodes base64 content and writes it to path.
func SaveBase64ToFile(encoded, path string) error {
	data, err := DecodeBase64(encoded)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &FileError{SDKError: SDKError{Message: "writing " + path, Cause: err}, Path: path}
	}
	return nil
}

package openai

import (
	"bytes"
	"strings"

	"github.com/google/uuid"
)

// Field is a simple text field in a multipart/form-data body.
type Field struct {
	Name  string
	Value string
}

// File is a binary file part in a multipart/form-data body.
type File struct {
	Name        string
	Filename    string
	ContentType string
	Data        []byte
}

// RandomBoundary returns a boundary token with a fixed prefix and a random
// hex suffix. The randomness is not cryptographic; it only needs to make a
// collision with body content overwhelmingly unlikely.
func RandomBoundary() string {
	return "----openaikit-" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// BuildMultipartBody renders a complete multipart/form-data body: every text
// field in input order, then every file part in input order, terminated by
// the closing boundary marker. Part order is server-observable, so callers
// relying on positional fields get exactly the order they passed.
//
// Caller contract: the boundary must not occur as a literal substring inside
// any field value or file payload. RandomBoundary satisfies this in practice;
// no collision scan is performed here.
func BuildMultipartBody(boundary string, fields []Field, files []File) []byte {
	var body bytes.Buffer

	for _, f := range fields {
		body.WriteString("--" + boundary + "\r\n")
		body.WriteString(`Content-Disposition: form-data; name="` + f.Name + `"` + "\r\n\r\n")
		body.WriteString(f.Value + "\r\n")
	}

	for _, f := range files {
		body.WriteString("--" + boundary + "\r\n")
		body.WriteString(`Content-Disposition: form-data; name="` + f.Name + `"; filename="` + f.Filename + `"` + "\r\n")
		body.WriteString("Content-Type: " + f.ContentType + "\r\n\r\n")
		body.Write(f.Data)
		body.WriteString("\r\n")
	}

	body.WriteString("--" + boundary + "--\r\n")
	return body.Bytes()
}

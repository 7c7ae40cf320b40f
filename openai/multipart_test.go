package openai

import (
	"bytes"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMultipartBodyLayout(t *testing.T) {
	body := BuildMultipartBody("B1",
		[]Field{{Name: "model", Value: "gpt-x"}},
		[]File{{Name: "image", Filename: "a.png", ContentType: "image/png", Data: []byte{0x89, 0x50}}},
	)

	want := "--B1\r\n" +
		"Content-Disposition: form-data; name=\"model\"\r\n\r\n" +
		"gpt-x\r\n" +
		"--B1\r\n" +
		"Content-Disposition: form-data; name=\"image\"; filename=\"a.png\"\r\n" +
		"Content-Type: image/png\r\n\r\n" +
		string([]byte{0x89, 0x50}) + "\r\n" +
		"--B1--\r\n"
	assert.Equal(t, want, string(body))
}

func TestBuildMultipartBodyPreservesOrder(t *testing.T) {
	fields := []Field{
		{Name: "b", Value: "2"},
		{Name: "a", Value: "1"},
		{Name: "c", Value: "3"},
	}
	body := BuildMultipartBody("B2", fields, nil)

	s := string(body)
	assert.Less(t, strings.Index(s, `name="b"`), strings.Index(s, `name="a"`))
	assert.Less(t, strings.Index(s, `name="a"`), strings.Index(s, `name="c"`))
	assert.True(t, strings.HasSuffix(s, "--B2--\r\n"))
}

func TestBuildMultipartBodyParsesBack(t *testing.T) {
	boundary := RandomBoundary()
	payload := []byte{0x00, 0x01, 0xfe, 0xff}
	body := BuildMultipartBody(boundary,
		[]Field{{Name: "model", Value: "gpt-image-1"}, {Name: "n", Value: "2"}},
		[]File{{Name: "image", Filename: "in.png", ContentType: "image/png", Data: payload}},
	)

	reader := multipart.NewReader(bytes.NewReader(body), boundary)

	part, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "model", part.FormName())
	value, _ := io.ReadAll(part)
	assert.Equal(t, "gpt-image-1", string(value))

	part, err = reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "n", part.FormName())

	part, err = reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "image", part.FormName())
	assert.Equal(t, "in.png", part.FileName())
	assert.Equal(t, "image/png", part.Header.Get("Content-Type"))
	data, _ := io.ReadAll(part)
	assert.Equal(t, payload, data)

	_, err = reader.NextPart()
	assert.Equal(t, io.EOF, err)
}

func TestBuildMultipartBodyNoParts(t *testing.T) {
	body := BuildMultipartBody("B3", nil, nil)
	assert.Equal(t, "--B3--\r\n", string(body))
}

func TestRandomBoundary(t *testing.T) {
	a := RandomBoundary()
	b := RandomBoundary()

	assert.True(t, strings.HasPrefix(a, "----openaikit-"))
	assert.NotEqual(t, a, b)
	assert.Len(t, a, len("----openaikit-")+32)
}

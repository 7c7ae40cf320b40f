package openai

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestImageEditMultipartFields(t *testing.T) {
	imagePath := writeTempFile(t, "photo.jpg", []byte{0xff, 0xd8, 0xff})

	r := &ImageEditRequest{
		Model:     "gpt-image-1",
		ImagePath: imagePath,
		Prompt:    String("restyle"),
		N:         Int(3),
		Extra: map[string]any{
			"output_compression": 75,
			"background":         "transparent",
		},
	}

	fields, files, err := r.multipart()
	require.NoError(t, err)

	// Typed fields in declaration order, then extras sorted by key.
	assert.Equal(t, []Field{
		{Name: "model", Value: "gpt-image-1"},
		{Name: "prompt", Value: "restyle"},
		{Name: "n", Value: "3"},
		{Name: "background", Value: "transparent"},
		{Name: "output_compression", Value: "75"},
	}, fields)

	require.Len(t, files, 1)
	assert.Equal(t, "image", files[0].Name)
	assert.Equal(t, "photo.jpg", files[0].Filename)
	assert.Equal(t, "image/jpeg", files[0].ContentType)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, files[0].Data)
}

func TestTranscriptionMultipartNumericFormat(t *testing.T) {
	audioPath := writeTempFile(t, "take.flac", []byte{0x66, 0x4c})

	r := &TranscriptionRequest{
		Model:       "whisper-1",
		FilePath:    audioPath,
		Temperature: Float64(0.25),
	}

	fields, files, err := r.multipart()
	require.NoError(t, err)

	assert.Contains(t, fields, Field{Name: "temperature", Value: "0.25"})
	require.Len(t, files, 1)
	assert.Equal(t, "file", files[0].Name)
	assert.Equal(t, "audio/flac", files[0].ContentType)
}

func TestTranscriptionMultipartStructuredExtra(t *testing.T) {
	audioPath := writeTempFile(t, "take.wav", []byte{0x52, 0x49})

	r := &TranscriptionRequest{
		Model:    "whisper-1",
		FilePath: audioPath,
		Extra: map[string]any{
			"timestamp_granularities": []string{"word", "segment"},
		},
	}

	fields, _, err := r.multipart()
	require.NoError(t, err)

	assert.Contains(t, fields, Field{
		Name:  "timestamp_granularities",
		Value: `["word","segment"]`,
	})
}

func TestSpeechBodyRequiresRequiredFields(t *testing.T) {
	_, err := (&SpeechRequest{Model: "m", Voice: "alloy"}).body()
	require.Error(t, err)
	var invalidErr *InvalidRequestError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "input", invalidErr.Field)
}

func TestVideoBodyExtraOverlay(t *testing.T) {
	r := &VideoRequest{
		Model:  "sora-2",
		Prompt: "sunrise over mountains",
		Seed:   Int(42),
		Extra:  map[string]any{"seed": 7},
	}

	body, err := r.body()
	require.NoError(t, err)
	assert.Equal(t, 7, body["seed"], "extra overlay wins over typed field")
}

package openai

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// Request mapping: each descriptor is turned into a wire body by setting the
// required fields, then every present optional under its documented key, then
// overlaying the Extra map (overwrite semantics). JSON endpoints serialize
// the resulting document; multipart endpoints render the same logical fields
// as text parts plus one or more file parts read from disk.

func requiredErr(field string) error {
	return &InvalidRequestError{
		SDKError: SDKError{Message: field + " is required"},
		Field:    field,
	}
}

func applyExtra(body map[string]any, extra map[string]any) {
	for k, v := range extra {
		body[k] = v
	}
}

// extraFields renders an Extra map as multipart text fields. String values
// pass through verbatim; anything else is JSON-encoded. Keys are sorted so
// multipart bodies are deterministic.
func extraFields(fields []Field, extra map[string]any) ([]Field, error) {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := extra[k].(type) {
		case string:
			fields = append(fields, Field{Name: k, Value: v})
		default:
			encoded, err := json.Marshal(v)
			if err != nil {
				return nil, &InvalidRequestError{
					SDKError: SDKError{Message: "extra field " + k + " is not serializable", Cause: err},
					Field:    k,
				}
			}
			fields = append(fields, Field{Name: k, Value: string(encoded)})
		}
	}
	return fields, nil
}

// readFilePart reads a caller-owned file into a multipart file part, sniffing
// its content type from the extension.
func readFilePart(name, path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, &FileError{SDKError: SDKError{Message: "reading " + path, Cause: err}, Path: path}
	}
	return File{
		Name:        name,
		Filename:    filepath.Base(path),
		ContentType: GuessMimeType(path),
		Data:        data,
	}, nil
}

func (r *ResponsesRequest) body() (map[string]any, error) {
	if r.Model == "" {
		return nil, requiredErr("model")
	}
	if r.Input == nil {
		return nil, requiredErr("input")
	}

	body := map[string]any{
		"model": r.Model,
		"input": r.Input,
	}

	if r.Instructions != nil {
		body["instructions"] = *r.Instructions
	}
	if r.Metadata != nil {
		body["metadata"] = r.Metadata
	}
	if r.Temperature != nil {
		body["temperature"] = *r.Temperature
	}
	if r.TopP != nil {
		body["top_p"] = *r.TopP
	}
	if r.MaxOutputTokens != nil {
		body["max_output_tokens"] = *r.MaxOutputTokens
	}
	if r.PreviousResponseID != nil {
		body["previous_response_id"] = *r.PreviousResponseID
	}
	if r.Reasoning != nil {
		body["reasoning"] = r.Reasoning
	}
	if r.Text != nil {
		body["text"] = r.Text
	}
	if r.Tools != nil {
		body["tools"] = r.Tools
	}
	if r.ToolChoice != nil {
		body["tool_choice"] = r.ToolChoice
	}
	if r.Truncation != nil {
		body["truncation"] = r.Truncation
	}
	if r.Include != nil {
		body["include"] = r.Include
	}
	if r.ParallelToolCalls != nil {
		body["parallel_tool_calls"] = *r.ParallelToolCalls
	}
	if r.Stream != nil {
		body["stream"] = *r.Stream
	}
	if r.Audio != nil {
		body["audio"] = r.Audio
	}
	if r.Store != nil {
		body["store"] = *r.Store
	}
	if r.User != nil {
		body["user"] = *r.User
	}
	if r.ServiceTier != nil {
		body["service_tier"] = *r.ServiceTier
	}

	applyExtra(body, r.Extra)
	return body, nil
}

func (r *ImageGenerateRequest) body() (map[string]any, error) {
	if r.Model == "" {
		return nil, requiredErr("model")
	}
	if r.Prompt == "" {
		return nil, requiredErr("prompt")
	}

	body := map[string]any{
		"model":  r.Model,
		"prompt": r.Prompt,
	}

	if r.N != nil {
		body["n"] = *r.N
	}
	if r.Size != nil {
		body["size"] = *r.Size
	}
	if r.Quality != nil {
		body["quality"] = *r.Quality
	}
	if r.Style != nil {
		body["style"] = *r.Style
	}
	if r.ResponseFormat != nil {
		body["response_format"] = *r.ResponseFormat
	}
	if r.User != nil {
		body["user"] = *r.User
	}

	applyExtra(body, r.Extra)
	return body, nil
}

func (r *ImageEditRequest) multipart() ([]Field, []File, error) {
	if r.Model == "" {
		return nil, nil, requiredErr("model")
	}
	if r.ImagePath == "" {
		return nil, nil, requiredErr("image")
	}

	fields := []Field{{Name: "model", Value: r.Model}}

	if r.Prompt != nil {
		fields = append(fields, Field{Name: "prompt", Value: *r.Prompt})
	}
	if r.N != nil {
		fields = append(fields, Field{Name: "n", Value: strconv.Itoa(*r.N)})
	}
	if r.Size != nil {
		fields = append(fields, Field{Name: "size", Value: *r.Size})
	}
	if r.Quality != nil {
		fields = append(fields, Field{Name: "quality", Value: *r.Quality})
	}
	if r.Style != nil {
		fields = append(fields, Field{Name: "style", Value: *r.Style})
	}
	if r.OutputFormat != nil {
		fields = append(fields, Field{Name: "output_format", Value: *r.OutputFormat})
	}
	if r.User != nil {
		fields = append(fields, Field{Name: "user", Value: *r.User})
	}

	fields, err := extraFields(fields, r.Extra)
	if err != nil {
		return nil, nil, err
	}

	image, err := readFilePart("image", r.ImagePath)
	if err != nil {
		return nil, nil, err
	}
	files := []File{image}

	if r.MaskPath != nil {
		mask, err := readFilePart("mask", *r.MaskPath)
		if err != nil {
			return nil, nil, err
		}
		files = append(files, mask)
	}

	return fields, files, nil
}

func (r *ModerationRequest) body() (map[string]any, error) {
	if r.Model == "" {
		return nil, requiredErr("model")
	}
	if r.Input == nil {
		return nil, requiredErr("input")
	}

	body := map[string]any{
		"model": r.Model,
		"input": r.Input,
	}

	applyExtra(body, r.Extra)
	return body, nil
}

func (r *SpeechRequest) body() (map[string]any, error) {
	if r.Model == "" {
		return nil, requiredErr("model")
	}
	if r.Input == "" {
		return nil, requiredErr("input")
	}
	if r.Voice == "" {
		return nil, requiredErr("voice")
	}

	body := map[string]any{
		"model":        r.Model,
		"instructions": r.Instructions,
		"input":        r.Input,
		"voice":        r.Voice,
	}

	if r.Format != nil {
		body["format"] = *r.Format
	}

	applyExtra(body, r.Extra)
	return body, nil
}

func (r *TranscriptionRequest) multipart() ([]Field, []File, error) {
	if r.Model == "" {
		return nil, nil, requiredErr("model")
	}
	if r.FilePath == "" {
		return nil, nil, requiredErr("file")
	}

	fields := []Field{{Name: "model", Value: r.Model}}

	if r.Language != nil {
		fields = append(fields, Field{Name: "language", Value: *r.Language})
	}
	if r.Prompt != nil {
		fields = append(fields, Field{Name: "prompt", Value: *r.Prompt})
	}
	if r.ResponseFormat != nil {
		fields = append(fields, Field{Name: "response_format", Value: *r.ResponseFormat})
	}
	if r.Temperature != nil {
		fields = append(fields, Field{Name: "temperature", Value: strconv.FormatFloat(*r.Temperature, 'f', -1, 64)})
	}

	fields, err := extraFields(fields, r.Extra)
	if err != nil {
		return nil, nil, err
	}

	// "file" is the field name the API requires.
	audio, err := readFilePart("file", r.FilePath)
	if err != nil {
		return nil, nil, err
	}

	return fields, []File{audio}, nil
}

func (r *VideoRequest) body() (map[string]any, error) {
	if r.Model == "" {
		return nil, requiredErr("model")
	}
	if r.Prompt == "" {
		return nil, requiredErr("prompt")
	}

	body := map[string]any{
		"model":  r.Model,
		"prompt": r.Prompt,
	}

	if r.AspectRatio != nil {
		body["aspect_ratio"] = *r.AspectRatio
	}
	if r.Format != nil {
		body["format"] = *r.Format
	}
	if r.Duration != nil {
		body["duration"] = *r.Duration
	}
	if r.Seed != nil {
		body["seed"] = *r.Seed
	}
	if r.User != nil {
		body["user"] = *r.User
	}
	if r.Metadata != nil {
		body["metadata"] = r.Metadata
	}

	applyExtra(body, r.Extra)
	return body, nil
}

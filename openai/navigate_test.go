package openai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseTestResponse builds a Response from a JSON literal, the same way the
// client parses an API body.
func parseTestResponse(t *testing.T, raw string) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	return resp
}

func TestFirstText(t *testing.T) {
	resp := parseTestResponse(t, `{
		"output": [
			{"type": "reasoning", "summary": []},
			{"type": "message", "content": [{"type": "output_text", "text": "hello"}]},
			{"type": "message", "content": [{"type": "output_text", "text": "world"}]}
		]
	}`)

	text, err := resp.FirstText()
	require.NoError(t, err)
	assert.Equal(t, "hello", text, "first message wins")
}

func TestFirstTextOnlyFirstContentEntry(t *testing.T) {
	resp := parseTestResponse(t, `{
		"output": [{"type": "message", "content": [
			{"type": "output_text", "text": "first"},
			{"type": "output_text", "text": "second"}
		]}]
	}`)

	text, err := resp.FirstText()
	require.NoError(t, err)
	assert.Equal(t, "first", text)
}

func TestFirstTextErrorPrecedence(t *testing.T) {
	resp := parseTestResponse(t, `{
		"error": {"type": "server_error", "message": "boom"},
		"output": [{"type": "message", "content": [{"text": "hello"}]}]
	}`)

	_, err := resp.FirstText()
	require.Error(t, err)
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "server_error", remoteErr.Type)
	assert.Contains(t, remoteErr.Error(), "boom")
}

func TestFirstTextErrorDefaults(t *testing.T) {
	resp := parseTestResponse(t, `{"error": {}}`)

	_, err := resp.FirstText()
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "error", remoteErr.Type)
	assert.Contains(t, remoteErr.Error(), "unknown error")
}

func TestFirstTextNullErrorIgnored(t *testing.T) {
	resp := parseTestResponse(t, `{
		"error": null,
		"output": [{"type": "message", "content": [{"text": "ok"}]}]
	}`)

	text, err := resp.FirstText()
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestFirstTextMissingShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"no output key", `{}`, ErrNoMessageBlock},
		{"empty output", `{"output": []}`, ErrNoMessageBlock},
		{"no message item", `{"output": [{"type": "reasoning"}]}`, ErrNoMessageBlock},
		{"message without content", `{"output": [{"type": "message"}]}`, ErrNoContent},
		{"empty content", `{"output": [{"type": "message", "content": []}]}`, ErrNoContent},
		{"content without text", `{"output": [{"type": "message", "content": [{"type": "refusal"}]}]}`, ErrNoTextField},
		{"text not a string", `{"output": [{"type": "message", "content": [{"text": 42}]}]}`, ErrNoTextField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTestResponse(t, tt.raw).FirstText()
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFirstToolCallSpecialized(t *testing.T) {
	resp := parseTestResponse(t, `{
		"output": [{"type": "image_generation_call", "result": "YWJj"}]
	}`)

	call, err := resp.FirstToolCall("image_generation")
	require.NoError(t, err)
	assert.Equal(t, "YWJj", call["result"])
}

func TestFirstToolCallGeneric(t *testing.T) {
	resp := parseTestResponse(t, `{
		"output": [
			{"type": "tool_call", "tool_name": "code_interpreter", "result": "nope"},
			{"type": "tool_call", "tool_name": "web_search", "result": ["r1", "r2"]}
		]
	}`)

	call, err := resp.FirstToolCall("web_search")
	require.NoError(t, err)
	assert.Equal(t, "web_search", call["tool_name"])
}

func TestFirstToolCallFirstMatchWins(t *testing.T) {
	resp := parseTestResponse(t, `{
		"output": [
			{"type": "image_generation_call", "result": "first"},
			{"type": "tool_call", "tool_name": "image_generation", "result": "second"}
		]
	}`)

	call, err := resp.FirstToolCall("image_generation")
	require.NoError(t, err)
	assert.Equal(t, "first", call["result"])
}

func TestFirstToolCallNotFound(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no output", `{}`},
		{"empty output", `{"output": []}`},
		{"wrong tool name", `{"output": [{"type": "tool_call", "tool_name": "other"}]}`},
		{"message only", `{"output": [{"type": "message", "content": [{"text": "hi"}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTestResponse(t, tt.raw).FirstToolCall("image_generation")
			require.ErrorIs(t, err, ErrNoToolCall)
		})
	}
}

func TestFirstToolCallErrorPrecedence(t *testing.T) {
	resp := parseTestResponse(t, `{
		"error": {"type": "rate_limit", "message": "slow down"},
		"output": [{"type": "image_generation_call", "result": "YWJj"}]
	}`)

	_, err := resp.FirstToolCall("image_generation")
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "rate_limit", remoteErr.Type)
}

func TestFirstImageBase64(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"string result", `{"output": [{"type": "image_generation_call", "result": "YWJj"}]}`, "YWJj"},
		{"list result", `{"output": [{"type": "image_generation_call", "result": ["aW1n", "b3RoZXI="]}]}`, "aW1n"},
		{"generic form", `{"output": [{"type": "tool_call", "tool_name": "image_generation", "result": "Z2Vu"}]}`, "Z2Vu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTestResponse(t, tt.raw).FirstImageBase64()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirstToolResultGenericTool(t *testing.T) {
	resp := parseTestResponse(t, `{
		"output": [{"type": "tool_call", "tool_name": "web_search", "result": ["r1", "r2"]}]
	}`)

	got, err := resp.FirstToolResult("web_search")
	require.NoError(t, err)
	assert.Equal(t, "r1", got)
}

func TestFirstImageBase64MissingResult(t *testing.T) {
	resp := parseTestResponse(t, `{"output": [{"type": "image_generation_call"}]}`)
	_, err := resp.FirstImageBase64()
	require.ErrorIs(t, err, ErrMissingResult)
}

func TestFirstImageBase64MalformedResult(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty list", `{"output": [{"type": "image_generation_call", "result": []}]}`},
		{"list of numbers", `{"output": [{"type": "image_generation_call", "result": [1, 2]}]}`},
		{"object result", `{"output": [{"type": "image_generation_call", "result": {"b64": "x"}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTestResponse(t, tt.raw).FirstImageBase64()
			require.ErrorIs(t, err, ErrMalformedResult)
		})
	}
}

func TestFirstImageBase64NoCall(t *testing.T) {
	resp := parseTestResponse(t, `{"output": []}`)
	_, err := resp.FirstImageBase64()
	require.ErrorIs(t, err, ErrNoToolCall)
}

package openai

import "fmt"

// Response is the parsed JSON view of an API response body. Extraction
// methods scan the ordered "output" list for the first item matching a
// semantic role; all navigation is read-only, single-pass and
// first-match-wins, with no fallback to later matches.
type Response map[string]any

// Err reports the API's own error envelope, when the response carries a
// non-null top-level "error" object. Every extractor checks this first, so a
// response with both an error and output items always fails with the error.
func (r Response) Err() error {
	errObj, ok := r["error"].(map[string]any)
	if !ok {
		return nil
	}

	errType := "error"
	message := "unknown error"
	if t, ok := errObj["type"].(string); ok {
		errType = t
	}
	if msg, ok := errObj["message"].(string); ok {
		message = msg
	}

	return &RemoteError{
		SDKError: SDKError{Message: "OpenAI error (" + errType + "): " + message},
		Type:     errType,
	}
}

// output returns the top-level output list, or nil if absent/mis-typed.
func (r Response) output() []any {
	out, _ := r["output"].([]any)
	return out
}

// FirstText returns the "text" field of the first content entry of the first
// "message" output item. Reasoning and tool items ahead of the message are
// skipped; content entries after the first are not consulted.
func (r Response) FirstText() (string, error) {
	if err := r.Err(); err != nil {
		return "", err
	}

	output := r.output()
	if len(output) == 0 {
		return "", fmt.Errorf("%w: response has no output items", ErrNoMessageBlock)
	}

	var message map[string]any
	for _, item := range output {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if t, _ := m["type"].(string); t == "message" {
			message = m
			break
		}
	}
	if message == nil {
		return "", ErrNoMessageBlock
	}

	content, _ := message["content"].([]any)
	if len(content) == 0 {
		return "", ErrNoContent
	}

	entry, _ := content[0].(map[string]any)
	if text, ok := entry["text"].(string); ok {
		return text, nil
	}
	return "", ErrNoTextField
}

// FirstToolCall returns the first output item produced by the named tool. An
// item matches if its type is "<toolType>_call" (the specialized form the
// Responses API uses for built-in tools like image_generation), or if its
// type is the generic "tool_call" and its tool_name equals toolType.
func (r Response) FirstToolCall(toolType string) (map[string]any, error) {
	if err := r.Err(); err != nil {
		return nil, err
	}

	callType := toolType + "_call"
	for _, item := range r.output() {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		t, _ := m["type"].(string)

		if t == callType {
			return m, nil
		}
		if t == "tool_call" {
			if name, _ := m["tool_name"].(string); name == toolType {
				return m, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: tool type %q", ErrNoToolCall, toolType)
}

// FirstToolResult returns the encoded result of the first output item
// produced by the named tool: the "result" field directly when it is a
// string, or the first element when it is a non-empty list of strings.
func (r Response) FirstToolResult(toolType string) (string, error) {
	call, err := r.FirstToolCall(toolType)
	if err != nil {
		return "", err
	}

	result, ok := call["result"]
	if !ok {
		return "", ErrMissingResult
	}

	switch v := result.(type) {
	case string:
		return v, nil
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s, nil
			}
		}
	}

	return "", fmt.Errorf("%w: result is neither a string nor a non-empty list of strings", ErrMalformedResult)
}

// FirstImageBase64 returns the base64 image payload of the first
// image_generation tool call.
func (r Response) FirstImageBase64() (string, error) {
	return r.FirstToolResult("image_generation")
}

package openai

// Request descriptors, one per endpoint family. Required parameters are
// plain value fields; optional parameters are pointers (nil means "leave the
// field off the wire"). Free-form API sub-objects (reasoning, tools, ...)
// are typed as any and serialized as given.
//
// Every descriptor carries an Extra map merged into the wire body after all
// typed fields, with last-write-wins semantics: an Extra entry whose key
// collides with a typed field replaces it. This is the escape hatch for API
// fields not modeled here.

// ResponsesRequest describes a POST /responses call.
//
// Temperature and TopP have an API-declared default of 1.0 that is distinct
// from omission. The zero value of this struct leaves them absent;
// NewResponsesRequest sets both to the declared default explicitly.
type ResponsesRequest struct {
	// Model is the model name, e.g. "gpt-4.1-mini". Required.
	Model string

	// Input is the model input: a plain string or a list of content blocks.
	// Required.
	Input any

	Instructions       *string
	Metadata           map[string]any
	Temperature        *float64
	TopP               *float64
	MaxOutputTokens    *int
	PreviousResponseID *string
	Reasoning          any
	Text               any
	Tools              any
	ToolChoice         any
	Truncation         any
	Include            any
	ParallelToolCalls  *bool
	Stream             *bool
	Audio              any
	Store              *bool
	User               *string
	ServiceTier        *string

	Extra map[string]any
}

// NewResponsesRequest returns a ResponsesRequest with the API-documented
// sampling defaults (temperature 1.0, top_p 1.0) set explicitly.
func NewResponsesRequest(model string, input any) *ResponsesRequest {
	return &ResponsesRequest{
		Model:       model,
		Input:       input,
		Temperature: Float64(1.0),
		TopP:        Float64(1.0),
	}
}

// ImageGenerateRequest describes a POST /images/generations call.
type ImageGenerateRequest struct {
	Model  string // required
	Prompt string // required

	N              *int
	Size           *string // e.g. "1024x1024"
	Quality        *string // "standard" or "hd"
	Style          *string // "vivid" or "natural"
	ResponseFormat *string // "url" or "b64_json"
	User           *string

	Extra map[string]any
}

// ImageEditRequest describes a POST /images/edits call. The body is
// multipart/form-data: ImagePath (and MaskPath, when set) are read from disk
// and attached as file parts with sniffed content types.
type ImageEditRequest struct {
	Model     string // required
	ImagePath string // required, path to the input image on disk

	MaskPath     *string // optional PNG mask; transparent areas are editable
	Prompt       *string
	N            *int
	Size         *string
	Quality      *string
	Style        *string
	OutputFormat *string
	User         *string

	Extra map[string]any
}

// ModerationRequest describes a POST /moderations call.
type ModerationRequest struct {
	Model string // required, e.g. "omni-moderation-latest"
	Input any    // required: a string or a list of strings

	Extra map[string]any
}

// SpeechRequest describes a POST /audio/speech call (text to speech).
// The response is raw audio bytes, not JSON.
type SpeechRequest struct {
	Model        string // required, e.g. "gpt-4o-mini-tts"
	Instructions string // required: how to speak
	Input        string // required: text to synthesize
	Voice        string // required, e.g. "alloy"

	Format *string // "mp3", "wav", "opus", ...

	Extra map[string]any
}

// TranscriptionRequest describes a POST /audio/transcriptions call. The body
// is multipart/form-data carrying the audio file at FilePath.
type TranscriptionRequest struct {
	Model    string // required, e.g. "gpt-4o-transcribe" or "whisper-1"
	FilePath string // required, path to the audio file on disk

	Language       *string
	Prompt         *string
	ResponseFormat *string // "json", "text", "vtt", ...
	Temperature    *float64

	Extra map[string]any
}

// VideoRequest describes a POST /videos call.
type VideoRequest struct {
	Model  string // required, e.g. "sora-2"
	Prompt string // required

	AspectRatio *string // "16:9", "9:16", "1:1"
	Format      *string // e.g. "mp4"
	Duration    *int    // seconds
	Seed        *int
	User        *string
	Metadata    map[string]any

	Extra map[string]any
}

// Pointer helpers for optional descriptor fields.

func String(v string) *string { return &v }

func Int(v int) *int { return &v }

func Float64(v float64) *float64 { return &v }

func Bool(v bool) *bool { return &v }

package main

import (
	"fmt"
	"os"

	"github.com/openaikit/openaikit/openai"
	"github.com/spf13/cobra"
)

var imageCmd = &cobra.Command{
	Use:   "image <prompt>",
	Short: "Generate an image and save it to disk",
	Long:  "Generate an image from a text prompt, either via the /images/generations endpoint or (with --tool) via the Responses API image_generation tool.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImage,
}

func init() {
	imageCmd.Flags().StringP("out", "o", "image.png", "Output file")
	imageCmd.Flags().String("size", "", "Image size, e.g. 1024x1024")
	imageCmd.Flags().Bool("tool", false, "Generate through the Responses API image_generation tool")

	rootCmd.AddCommand(imageCmd)
}

func runImage(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	size, _ := cmd.Flags().GetString("size")
	viaTool, _ := cmd.Flags().GetBool("tool")

	var b64 string
	if viaTool {
		b64, err = generateViaResponses(cmd, client, args[0])
	} else {
		b64, err = generateViaImages(cmd, client, args[0], size)
	}
	if err != nil {
		return err
	}

	if err := openai.SaveBase64ToFile(b64, out); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Saved image to %s\n", out)
	return nil
}

// generateViaImages hits POST /images/generations and pulls the first
// b64_json entry out of the data list.
func generateViaImages(cmd *cobra.Command, client *openai.Client, prompt, size string) (string, error) {
	req := &openai.ImageGenerateRequest{
		Model:          modelOr("gpt-image-1"),
		Prompt:         prompt,
		ResponseFormat: openai.String("b64_json"),
	}
	if size != "" {
		req.Size = openai.String(size)
	}

	resp, err := client.GenerateImage(cmd.Context(), req)
	if err != nil {
		return "", err
	}

	data, _ := resp["data"].([]any)
	if len(data) == 0 {
		return "", fmt.Errorf("images response has no data entries")
	}
	entry, _ := data[0].(map[string]any)
	b64, ok := entry["b64_json"].(string)
	if !ok {
		return "", fmt.Errorf("images response entry has no b64_json field")
	}
	return b64, nil
}

// generateViaResponses asks the Responses API to run the image_generation
// tool and extracts the tool call's base64 result.
func generateViaResponses(cmd *cobra.Command, client *openai.Client, prompt string) (string, error) {
	req := openai.NewResponsesRequest(modelOr("gpt-4.1-mini"), prompt)
	req.Tools = []any{
		map[string]any{"type": "image_generation"},
	}

	resp, err := client.CreateResponse(cmd.Context(), req)
	if err != nil {
		return "", err
	}
	return resp.FirstImageBase64()
}

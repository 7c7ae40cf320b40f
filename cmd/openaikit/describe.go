package main

import (
	"fmt"

	"github.com/openaikit/openaikit/openai"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <image-file>",
	Short: "Describe a local image using the Responses API",
	Long:  "Encode a local image as a data URL, send it inline to the Responses API and print the model's description.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDescribe,
}

func init() {
	describeCmd.Flags().String("prompt", "Describe this image.", "Question to ask about the image")

	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	dataURL, err := openai.FileToDataURL(args[0])
	if err != nil {
		return err
	}

	prompt, _ := cmd.Flags().GetString("prompt")
	input := []any{
		map[string]any{
			"type": "message",
			"role": "user",
			"content": []any{
				map[string]any{"type": "input_text", "text": prompt},
				map[string]any{"type": "input_image", "image_url": dataURL},
			},
		},
	}

	resp, err := client.CreateResponse(cmd.Context(), openai.NewResponsesRequest(modelOr("gpt-4.1-mini"), input))
	if err != nil {
		return err
	}

	text, err := resp.FirstText()
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}

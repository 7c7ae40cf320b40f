package main

import (
	"fmt"
	"os"

	"github.com/openaikit/openaikit/openai"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <image-file> <prompt>",
	Short: "Edit a local image with a text prompt",
	Args:  cobra.ExactArgs(2),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringP("out", "o", "edited.png", "Output file")
	editCmd.Flags().String("mask", "", "Optional PNG mask; transparent areas are editable")
	editCmd.Flags().String("size", "", "Output size, e.g. 1024x1024")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	req := &openai.ImageEditRequest{
		Model:     modelOr("gpt-image-1"),
		ImagePath: args[0],
		Prompt:    openai.String(args[1]),
	}
	if mask, _ := cmd.Flags().GetString("mask"); mask != "" {
		req.MaskPath = openai.String(mask)
	}
	if size, _ := cmd.Flags().GetString("size"); size != "" {
		req.Size = openai.String(size)
	}

	resp, err := client.EditImage(cmd.Context(), req)
	if err != nil {
		return err
	}

	data, _ := resp["data"].([]any)
	if len(data) == 0 {
		return fmt.Errorf("images response has no data entries")
	}
	entry, _ := data[0].(map[string]any)
	b64, ok := entry["b64_json"].(string)
	if !ok {
		return fmt.Errorf("images response entry has no b64_json field")
	}

	out, _ := cmd.Flags().GetString("out")
	if err := openai.SaveBase64ToFile(b64, out); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Saved edited image to %s\n", out)
	return nil
}

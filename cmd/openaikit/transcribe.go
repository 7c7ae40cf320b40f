package main

import (
	"fmt"
	"os"

	"github.com/openaikit/openaikit/openai"
	"github.com/spf13/cobra"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe an audio file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTranscribe,
}

func init() {
	transcribeCmd.Flags().String("format", "text", "Response format: text, json, vtt, srt")
	transcribeCmd.Flags().String("language", "", "Language hint, e.g. en")
	transcribeCmd.Flags().StringP("out", "o", "", "Write the transcript to a file instead of stdout")

	rootCmd.AddCommand(transcribeCmd)
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	req := &openai.TranscriptionRequest{
		Model:          modelOr("gpt-4o-transcribe"),
		FilePath:       args[0],
		ResponseFormat: openai.String(format),
	}
	if language, _ := cmd.Flags().GetString("language"); language != "" {
		req.Language = openai.String(language)
	}

	transcript, err := client.CreateTranscription(cmd.Context(), req)
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := os.WriteFile(out, []byte(transcript), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved transcript to %s\n", out)
		return nil
	}

	fmt.Println(transcript)
	return nil
}

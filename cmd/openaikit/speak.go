package main

import (
	"fmt"
	"os"

	"github.com/openaikit/openaikit/openai"
	"github.com/spf13/cobra"
)

var speakCmd = &cobra.Command{
	Use:   "speak <text>",
	Short: "Synthesize speech and save the audio to disk",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpeak,
}

func init() {
	speakCmd.Flags().StringP("out", "o", "speech.mp3", "Output audio file")
	speakCmd.Flags().String("voice", "alloy", "Voice name")
	speakCmd.Flags().String("instructions", "Speak naturally.", "Delivery instructions")
	speakCmd.Flags().String("format", "mp3", "Audio format")

	rootCmd.AddCommand(speakCmd)
}

func runSpeak(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	voice, _ := cmd.Flags().GetString("voice")
	instructions, _ := cmd.Flags().GetString("instructions")
	format, _ := cmd.Flags().GetString("format")

	audio, err := client.CreateSpeech(cmd.Context(), &openai.SpeechRequest{
		Model:        modelOr("gpt-4o-mini-tts"),
		Instructions: instructions,
		Input:        args[0],
		Voice:        voice,
		Format:       openai.String(format),
	})
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if err := os.WriteFile(out, audio, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Saved %d bytes of audio to %s\n", len(audio), out)
	return nil
}

package main

import (
	"encoding/json"
	"fmt"

	"github.com/openaikit/openaikit/openai"
	"github.com/spf13/cobra"
)

var videoCmd = &cobra.Command{
	Use:   "video <prompt>",
	Short: "Create a video generation job",
	Args:  cobra.ExactArgs(1),
	RunE:  runVideo,
}

func init() {
	videoCmd.Flags().String("aspect-ratio", "", "Aspect ratio, e.g. 16:9")
	videoCmd.Flags().Int("duration", 0, "Target duration in seconds (0 = model default)")
	videoCmd.Flags().Int("seed", 0, "Random seed for reproducibility (0 = unset)")

	rootCmd.AddCommand(videoCmd)
}

func runVideo(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	req := &openai.VideoRequest{
		Model:  modelOr("sora-2"),
		Prompt: args[0],
	}
	if ratio, _ := cmd.Flags().GetString("aspect-ratio"); ratio != "" {
		req.AspectRatio = openai.String(ratio)
	}
	if duration, _ := cmd.Flags().GetInt("duration"); duration > 0 {
		req.Duration = openai.Int(duration)
	}
	if seed, _ := cmd.Flags().GetInt("seed"); seed > 0 {
		req.Seed = openai.Int(seed)
	}

	resp, err := client.CreateVideo(cmd.Context(), req)
	if err != nil {
		return err
	}

	pretty, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(pretty))
	return nil
}

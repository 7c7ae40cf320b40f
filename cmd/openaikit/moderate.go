package main

import (
	"encoding/json"
	"fmt"

	"github.com/openaikit/openaikit/openai"
	"github.com/spf13/cobra"
)

var moderateCmd = &cobra.Command{
	Use:   "moderate <text>",
	Short: "Classify text with the Moderations API",
	Args:  cobra.ExactArgs(1),
	RunE:  runModerate,
}

func init() {
	rootCmd.AddCommand(moderateCmd)
}

func runModerate(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	resp, err := client.CreateModeration(cmd.Context(), &openai.ModerationRequest{
		Model: modelOr("omni-moderation-latest"),
		Input: args[0],
	})
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

package main

import (
	"fmt"

	"github.com/openaikit/openaikit/openai"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <prompt>",
	Short: "Send a prompt to the Responses API and print the reply",
	Args:  cobra.ExactArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().String("instructions", "", "System instructions for the model")
	askCmd.Flags().Float64("temperature", 1.0, "Sampling temperature")
	askCmd.Flags().Int("max-output-tokens", 0, "Cap on output tokens (0 = no cap)")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	req := openai.NewResponsesRequest(modelOr("gpt-4.1-mini"), args[0])
	if instructions, _ := cmd.Flags().GetString("instructions"); instructions != "" {
		req.Instructions = openai.String(instructions)
	}
	if cmd.Flags().Changed("temperature") {
		temperature, _ := cmd.Flags().GetFloat64("temperature")
		req.Temperature = openai.Float64(temperature)
	}
	if maxTokens, _ := cmd.Flags().GetInt("max-output-tokens"); maxTokens > 0 {
		req.MaxOutputTokens = openai.Int(maxTokens)
	}

	resp, err := client.CreateResponse(cmd.Context(), req)
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

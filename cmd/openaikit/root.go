package main

import (
	"log/slog"
	"os"

	"github.com/openaikit/openaikit/openai"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "openaikit",
	Short: "OpenAI API command-line client",
	Long:  "openaikit drives the OpenAI HTTP API from the terminal: text responses, image generation and editing, speech synthesis, transcription, moderation and video jobs.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("model", "m", "", "Model to use (default depends on the subcommand)")
	rootCmd.PersistentFlags().String("organization", "", "OpenAI-Organization header value")
	rootCmd.PersistentFlags().String("project", "", "OpenAI-Project header value")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output (logs each HTTP exchange)")

	_ = viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	_ = viper.BindPFlag("organization", rootCmd.PersistentFlags().Lookup("organization"))
	_ = viper.BindPFlag("project", rootCmd.PersistentFlags().Lookup("project"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix("OPENAIKIT")
	viper.AutomaticEnv()
}

// newClient builds the shared API client from flags and environment. The API
// key itself comes from OPENAI_API_KEY.
func newClient() (*openai.Client, error) {
	var opts []openai.Option
	if org := viper.GetString("organization"); org != "" {
		opts = append(opts, openai.WithOrganization(org))
	}
	if project := viper.GetString("project"); project != "" {
		opts = append(opts, openai.WithProject(project))
	}
	if viper.GetBool("verbose") {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, openai.WithLogger(logger))
	}
	return openai.NewClient("", opts...)
}

// modelOr returns the --model flag value, or def when the flag is unset.
func modelOr(def string) string {
	if m := viper.GetString("model"); m != "" {
		return m
	}
	return def
}

/*
Copyright © 2025 krishnavamsip
*/
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/krishnavamsip/pdf-assistant/config"
	"github.com/krishnavamsip/pdf-assistant/service"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pdf-assistant",
	Short: "AI document assistant for PDF files",
	Long: `pdf-assistant extracts text from PDF documents and generates
summaries, quizzes and answers through a chat completion API.

Run "pdf-assistant start" for the HTTP server, or use the summarize,
quiz and ask commands to work with local files directly.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yaml", "config file")
}

func loadConfig() (*config.Config, error) {
	return config.LoadConfig(cfgFile)
}

// newAIService picks the completion backend from the configured provider.
func newAIService(ctx context.Context, cfg *config.Config) (service.AIService, error) {
	if cfg.Provider == "gemini" {
		return service.NewGeminiService(ctx, cfg)
	}
	return service.NewPerplexityService(cfg), nil
}

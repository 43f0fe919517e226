/*
Copyright © 2025 krishnavamsip
*/
package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/krishnavamsip/pdf-assistant/service"
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask [pdf file] [question]",
	Short: "Answer a question about a local PDF document",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx := context.Background()
		aiService, err := newAIService(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to create AI service: %v", err)
		}

		pdfService := service.NewPDFService()
		text, _, err := pdfService.ExtractText(args[0])
		if err != nil {
			log.Fatalf("Failed to extract text: %v", err)
		}

		qaService := service.NewQAService(aiService, cfg)
		answer, _ := qaService.Answer(ctx, text, args[1])
		fmt.Println(answer)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}

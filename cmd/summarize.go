/*
Copyright © 2025 krishnavamsip
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/krishnavamsip/pdf-assistant/service"
)

// summarizeCmd represents the summarize command
var summarizeCmd = &cobra.Command{
	Use:   "summarize [pdf file]",
	Short: "Summarize a local PDF document",
	Args:  cobra.ExactArgs(1),
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
		text, pages, err := pdfService.ExtractText(args[0])
		if err != nil {
			log.Fatalf("Failed to extract text: %v", err)
		}
		log.Printf("Extracted %d characters from %d pages", len(text), pages)

		summaryService := service.NewSummaryService(aiService, cfg)
		summary, err := summaryService.Summarize(ctx, text, func(fraction float64, status string) {
			fmt.Fprintf(os.Stderr, "[%3.0f%%] %s\n", fraction*100, status)
		})
		if err != nil {
			log.Fatalf("Failed to summarize: %v", err)
		}

		fmt.Println(summary)
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}

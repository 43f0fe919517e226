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

// quizCmd represents the quiz command
var quizCmd = &cobra.Command{
	Use:   "quiz [pdf file]",
	Short: "Generate multiple-choice questions from a local PDF document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		count, _ := cmd.Flags().GetInt("count")
		offset, _ := cmd.Flags().GetInt("offset")

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

		quizService := service.NewQuizService(aiService, cfg)
		questions := quizService.Generate(ctx, text, count, offset)
		if len(questions) == 0 {
			log.Fatal("No questions could be generated")
		}

		for i, q := range questions {
			fmt.Printf("%d. %s\n", i+1, q.Question)
			for j, opt := range q.Options {
				fmt.Printf("   %c) %s\n", 'A'+j, opt)
			}
			fmt.Printf("   Answer: %s\n\n", q.Answer)
		}
	},
}

func init() {
	rootCmd.AddCommand(quizCmd)
	quizCmd.Flags().IntP("count", "n", 5, "number of questions to generate")
	quizCmd.Flags().IntP("offset", "o", 0, "section offset, cycles through document quarters")
}

/*
Copyright © 2025 krishnavamsip
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/krishnavamsip/pdf-assistant/database"
	"github.com/krishnavamsip/pdf-assistant/repository"
	"github.com/krishnavamsip/pdf-assistant/service"
	"github.com/krishnavamsip/pdf-assistant/types"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload [pdf file]",
	Short: "Upload a local PDF document to storage and register it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		userID, _ := cmd.Flags().GetString("user")

		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx := context.Background()

		mongoClient, err := database.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoClient.Disconnect(ctx)
		documentRepo := repository.NewDocumentRepo(mongoClient.Database("pdf_assistant"))

		storageService, err := service.NewStorageService(cfg)
		if err != nil {
			log.Fatalf("Failed to create storage service: %v", err)
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("Failed to read file: %v", err)
		}

		pdfService := service.NewPDFService()
		text, pages, err := pdfService.ExtractBytes(data)
		if err != nil {
			log.Fatalf("Failed to extract text: %v", err)
		}

		fileName := filepath.Base(args[0])
		publicURL, storageKey, err := storageService.Upload(ctx, data, fileName, userID)
		if err != nil {
			log.Fatalf("Failed to upload file: %v", err)
		}

		chapterService := service.NewChapterService()
		doc := &types.StoredDocument{
			ID:         uuid.NewString(),
			UserID:     userID,
			Title:      fileName,
			StorageKey: storageKey,
			PublicURL:  publicURL,
			Pages:      pages,
			Chars:      len(text),
			Text:       text,
			Chapters:   chapterService.DetectChapters(text),
			CreateAt:   time.Now().Unix(),
		}
		if err := documentRepo.Create(ctx, doc); err != nil {
			storageService.Delete(ctx, storageKey)
			log.Fatalf("Failed to save document: %v", err)
		}

		fmt.Printf("Uploaded %s (%d pages, %d chars)\nID: %s\nURL: %s\n",
			doc.Title, doc.Pages, doc.Chars, doc.ID, doc.PublicURL)
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().StringP("user", "u", "cli", "owner user ID for the uploaded document")
}

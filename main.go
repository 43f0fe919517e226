/*
Copyright © 2025 krishnavamsip
*/
package main

import (
	"github.com/joho/godotenv"

	"github.com/krishnavamsip/pdf-assistant/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// Missing .env is fine, configuration can come from real env vars.
	_ = godotenv.Load()
}

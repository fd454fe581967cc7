// Command listmodels prints the Gemini models visible to GOOGLE_API_KEY and
// whether each one supports generateContent.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Vijaybattula26/gemini-ats/pkg/config"
	"github.com/Vijaybattula26/gemini-ats/pkg/llm/gemini"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.GoogleAPIKey == "" {
		log.Fatal("GOOGLE_API_KEY is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := gemini.New(gemini.Config{
		APIKey:   cfg.GoogleAPIKey,
		Backend:  cfg.GeminiBackend,
		Project:  cfg.GCPProject,
		Location: cfg.GCPLocation,
	})
	models, err := client.ListModels(ctx)
	if err != nil {
		log.Fatalf("list models: %v", err)
	}
	fmt.Fprintln(os.Stdout, "Available models:")
	for _, m := range models {
		support := "NOT supported for generateContent"
		if m.GenerateContent {
			support = "supported for generateContent"
		}
		fmt.Fprintf(os.Stdout, "- %s (%s)\n", m.Name, support)
	}
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"draw-guess/api/internal/config"
	"draw-guess/api/internal/handle"
	"draw-guess/api/internal/httpserver"
	"draw-guess/api/internal/vision"
	"draw-guess/api/internal/vision/gemini"
	"draw-guess/api/internal/vision/openai"
)

func main() {
	cfg := config.Load()

	engines := &vision.Engines{
		Default: cfg.LLMProvider,
		Gemini:  gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
		OpenAI:  openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
	}
	if def, err := engines.GetEngine(""); err != nil {
		log.Fatalf("LLM_PROVIDER=%q: %v", cfg.LLMProvider, err)
	} else if !def.Configured() {
		// not fatal: every analyze call answers 500 until the key is set
		log.Printf("warning: %s API key is not configured", vision.DisplayName(def.Name()))
	}

	h := handle.New(engines, cfg.AnalyzeTimeout, cfg.AnalyzeTimeoutMax)
	router := httpserver.NewRouter(h, cfg.CORSAllowOrigin)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("guess-proxy: provider=%s", cfg.LLMProvider)
	if err := httpserver.Run(ctx, ":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fadhakker-backend/internal/config"
	"fadhakker-backend/internal/database"
	"fadhakker-backend/internal/handlers"
	"fadhakker-backend/internal/middleware"
	"fadhakker-backend/internal/router"
	"fadhakker-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Fa-dhakker Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Gemini Client ────
	// A missing key is not fatal: the service still starts and answers
	// health probes, and chat requests report a configuration error.
	geminiService, err := services.NewGeminiService(
		context.Background(),
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		time.Duration(cfg.GeminiTimeoutMS)*time.Millisecond,
	)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	if geminiService.Ready() {
		log.Println("✓ Gemini client initialized")
	} else {
		log.Println("⚠ GEMINI_API_KEY is not set; chat requests will fail until it is configured")
	}

	// ──── Step 3: Initialize Rate-Limit Stores ────
	var apiStore, chatStore middleware.RateStore
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClient.Close()
		apiStore = middleware.NewRedisStore(redisClient, "rate:api", cfg.APIRatePerMinute, time.Minute)
		chatStore = middleware.NewRedisStore(redisClient, "rate:chat", cfg.ChatRatePerMinute, time.Minute)
		log.Println("✓ Redis connected (shared rate-limit counters)")
	} else {
		apiStore = middleware.NewMemoryStore(cfg.APIRatePerMinute, time.Minute)
		chatStore = middleware.NewMemoryStore(cfg.ChatRatePerMinute, time.Minute)
		log.Println("✓ In-memory rate-limit counters initialized")
	}

	// ──── Step 4: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(geminiService, cfg.ChatHistoryWindow, cfg.ChatMaxMessageChars)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(
		chatHandler,
		middleware.NewRateLimiter(apiStore),
		middleware.NewRateLimiter(chatStore),
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Must outlast the model-call deadline so timeouts are reported as
		// 408 bodies instead of dropped connections.
		WriteTimeout: time.Duration(cfg.GeminiTimeoutMS)*time.Millisecond + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Fa-dhakker Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  Chat: POST http://localhost:%s/api/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

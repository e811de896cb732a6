package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mzimmersmith/portfolio-api/internal/api"
	"github.com/mzimmersmith/portfolio-api/internal/config"
	"github.com/mzimmersmith/portfolio-api/internal/dispatch"
	"github.com/mzimmersmith/portfolio-api/internal/ratelimit"
)

// checkPortAvailable verifies that the target port is not already in use.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v", port, addr, err)
	}
	ln.Close()
	return nil
}

func main() {
	log.Println("Portfolio contact relay starting")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Contact.RateLimitSalt == "" {
		// The handler reports this per request too, but catching it at boot
		// saves an operator a confusing first submission.
		log.Println("[config] WARNING: RATE_LIMIT_SALT is not set; contact submissions will fail")
	}
	if cfg.Contact.To == "" {
		log.Fatalf("CONTACT_TO (contact.to) is required")
	}

	host := cfg.Server.GetHost()
	port := cfg.Server.Port
	if err := checkPortAvailable(host, port); err != nil {
		log.Fatalf("Pre-flight check FAILED: %v", err)
	}

	// Rate-limit store
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Fatalf("Invalid redis URL: %v", err)
	}
	redisClient := redis.NewClient(opts)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Redis connection failed: %v", err)
		}
		cancel()
	}
	log.Printf("[ratelimit] Connected to Redis at %s", cfg.Redis.URL)

	limiter := ratelimit.NewLimiter(redisClient, cfg.Contact.RateLimitSalt, cfg.Contact.RateLimitWindow())
	defer limiter.Close()

	// Email dispatcher
	var dispatcher dispatch.Dispatcher
	switch cfg.Contact.Provider {
	case "resend":
		dispatcher = dispatch.NewResendClient(cfg.Resend)
		log.Println("[dispatch] Using Resend API")
	case "ses":
		dispatcher, err = dispatch.NewSESDispatcher(context.Background(), cfg.SES)
		if err != nil {
			log.Fatalf("Failed to initialize SES dispatcher: %v", err)
		}
		log.Printf("[dispatch] Using AWS SES in %s", cfg.SES.Region)
	case "log":
		dispatcher = dispatch.NewLogDispatcher()
		log.Println("[dispatch] Using log-only dispatcher (no email will be sent)")
	default:
		log.Fatalf("Unknown contact provider %q (want resend, ses or log)", cfg.Contact.Provider)
	}

	handlers := api.NewHandlers(limiter, dispatcher, cfg.Contact)
	healthChecker := api.NewHealthChecker(redisClient, cfg.Contact.Provider)
	router := api.SetupRoutes(handlers, healthChecker)

	addr := fmt.Sprintf("%s:%d", host, port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Listening on http://%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

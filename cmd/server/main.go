package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_palindrome/internal/adapters/httpapi"
	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	"github.com/baditaflorin/go_palindrome/internal/adapters/storage/memory"
	"github.com/baditaflorin/go_palindrome/internal/config"
	"github.com/baditaflorin/go_palindrome/internal/core/detection"
	"github.com/baditaflorin/go_palindrome/internal/ports"
	"github.com/baditaflorin/go_palindrome/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags override the environment.
	flag.IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
	flag.DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "HTTP read timeout")
	flag.DurationVar(&cfg.WriteTimeout, "write-timeout", cfg.WriteTimeout, "HTTP write timeout")
	flag.IntVar(&cfg.MaxRequestSize, "max-request-size", cfg.MaxRequestSize, "Maximum request size in bytes")
	flag.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Maximum number of concurrent requests (0 = fasthttp default)")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Log file path (empty = stdout)")
	flag.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "Write logs as JSON")
	flag.BoolVar(&cfg.Seed, "seed", cfg.Seed, "Insert sample palindromes on startup")
	flag.StringVar(&cfg.SeedFile, "seed-file", cfg.SeedFile, "YAML file with sample palindromes (empty = built-in samples)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := createLogger(cfg.LogFile, cfg.LogJSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if err := run(cfg, log); err != nil {
		log.Error("Server error", "error", err)
		log.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log ports.Logger) error {
	log.Info("Starting palindrome HTTP server",
		"port", cfg.Port,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"concurrency", cfg.Concurrency,
		"seed", cfg.Seed,
		"seed_file", cfg.SeedFile,
	)

	var samples []string
	if cfg.Seed {
		var err error
		samples, err = seed.Resolve(cfg.SeedFile)
		if err != nil {
			return err
		}
	}

	checker := detection.NewChecker(normalizer.NewDefaultNormalizer(), log)
	store := memory.New(checker, log, memory.WithSamples(samples))
	handler := httpapi.NewHandler(checker, store, log)

	server := httpapi.NewServer(handler, httpapi.ServerConfig{
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		Concurrency:    cfg.Concurrency,
	})

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			log.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	log.Info("Server listening", "address", cfg.Addr())
	if err := server.ListenAndServe(cfg.Addr()); err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}

	<-idleConnsClosed
	log.Info("Server stopped", "records", store.Len())
	return nil
}

// createLogger creates and configures a logger
func createLogger(logFile string, jsonFormat bool) (ports.Logger, error) {
	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	log, err := logger.NewCustomStdLogger(l.Config{
		Output:      output,
		JsonFormat:  jsonFormat,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/hangman/pkg/api"
	"github.com/cbodonnell/hangman/pkg/config"
	"github.com/cbodonnell/hangman/pkg/log"
	"github.com/cbodonnell/hangman/pkg/version"
	"github.com/cbodonnell/hangman/pkg/wordsource"
)

func main() {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	port := flag.Int("port", cfg.Port, "port to listen on")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting server version %s", version.Get())

	source, err := wordsource.NewHTTPSource(wordsource.NewHTTPSourceOptions{
		BaseURL:        cfg.WordSource.URL,
		Timeout:        cfg.WordSource.Timeout,
		MaxAttempts:    cfg.WordSource.MaxAttempts,
		InitialBackoff: cfg.WordSource.InitialBackoff,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create word source: %v", err))
	}

	apiServerOpts := api.NewAPIServerOptions{
		Port:        *port,
		AllowOrigin: cfg.AllowOrigin,
		StaticDir:   cfg.StaticDir,
		WordSource:  source,
	}
	if cfg.TLSEnabled() {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: cfg.TLSCertFile,
			KeyFile:  cfg.TLSKeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go server.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
}

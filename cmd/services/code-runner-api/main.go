package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"code-runner/internal/config"
	"code-runner/internal/forwarder"
	"code-runner/internal/judge0"
	"code-runner/internal/parser"
	"code-runner/internal/routing"
)

func main() {
	args := parser.ParseDefaultConfigurationArguments()
	config.ConfigureLogger(config.GetCurrentEnvironment(), args.LogLevel)

	log.Info().Msg("starting code-runner-api")

	judge0Config := args.Judge0()

	if err := judge0Config.Validate(); err != nil {
		log.Warn().Err(err).Msg("judge0 configuration is incomplete")
	}

	handler := forwarder.New(judge0Config, judge0.NewClient(judge0Config))
	router := routing.NewRouter(handler)

	server := &http.Server{
		Addr:              args.ListenAddress,
		Handler:           handlers.LoggingHandler(os.Stdout, handlers.CompressHandler(router)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("address", args.ListenAddress).Msg("listening")

		if listenErr := server.ListenAndServe(); listenErr != nil && !errors.Is(listenErr, http.ErrServerClosed) {
			log.Fatal().Err(listenErr).Msg("failed to listen")
		}
	}()

	// wait for signal to exit
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down code-runner-api")

	// in flight submissions may be waiting on judge0 for the full timeout.
	ctx, cancel := context.WithTimeout(context.Background(), judge0Config.Timeout+5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to shut down cleanly")
	}
}

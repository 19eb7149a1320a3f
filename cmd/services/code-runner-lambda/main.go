package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"code-runner/internal/config"
	"code-runner/internal/forwarder"
	"code-runner/internal/judge0"
	"code-runner/internal/parser"
)

func main() {
	args := parser.ParseDefaultConfigurationArguments()
	config.ConfigureLogger(config.GetCurrentEnvironment(), args.LogLevel)

	judge0Config := args.Judge0()

	// a missing token fails each invocation, the runtime still starts.
	if err := judge0Config.Validate(); err != nil {
		log.Warn().Err(err).Msg("judge0 configuration is incomplete")
	}

	handler := forwarder.New(judge0Config, judge0.NewClient(judge0Config))

	log.Info().Str("environment", config.GetCurrentEnvironment()).Msg("starting code-runner lambda")
	lambda.Start(handler.Handle)
}

package parser

import (
	"os"
	"time"

	"github.com/namsral/flag"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"code-runner/internal/config"
)

// Arguments are read from command line flags first and then from the
// environment, flag judge0-api-url maps to JUDGE0_API_URL and so on.
type Arguments struct {
	Judge0APIURL    string
	Judge0AuthToken string
	Judge0Timeout   time.Duration

	LogLevel      string
	ListenAddress string
}

// Judge0 converts the parsed arguments into the configuration used by the
// forwarder and the judge0 client.
func (a Arguments) Judge0() *config.Judge0 {
	return config.NewJudge0(a.Judge0APIURL, a.Judge0AuthToken, a.Judge0Timeout)
}

func ParseArguments(name string, arguments []string) (Arguments, error) {
	args := Arguments{}
	set := flag.NewFlagSet(name, flag.ContinueOnError)

	set.StringVar(&args.Judge0APIURL, "judge0-api-url", config.DefaultJudge0APIURL, "base url of the judge0 api")
	set.StringVar(&args.Judge0AuthToken, "judge0-auth-token", "", "token sent in the td-auth-token header")
	set.DurationVar(&args.Judge0Timeout, "judge0-timeout", config.DefaultJudge0Timeout, "timeout for a single submission")

	set.StringVar(&args.LogLevel, "log-level", "", "overrides the environment log level")
	set.StringVar(&args.ListenAddress, "listen-address", ":8080", "address of the local http server")

	if err := set.Parse(arguments); err != nil {
		return args, errors.Wrap(err, "failed to parse arguments")
	}

	return args, nil
}

func ParseDefaultConfigurationArguments() Arguments {
	args, err := ParseArguments(os.Args[0], os.Args[1:])

	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse configuration arguments")
	}

	log.Info().
		Str("judge0ApiUrl", args.Judge0APIURL).
		Bool("judge0AuthToken", args.Judge0AuthToken != "").
		Dur("judge0Timeout", args.Judge0Timeout).
		Str("listenAddress", args.ListenAddress).
		Msg("parsed arguments")

	return args
}

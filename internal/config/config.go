package config

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"code-runner/internal/validation"
)

var currentEnvironment = ""

const DefaultEnvironment = "development"
const DevelopmentEnvironment = "development"

const (
	DefaultJudge0APIURL  = "http://localhost:2358"
	DefaultJudge0Timeout = 30 * time.Second
)

// ErrInvalidConfiguration is returned when the judge0 configuration cannot
// be used to submit code, most commonly because the auth token is missing.
var ErrInvalidConfiguration = errors.New("invalid judge0 configuration")

// envOnce is used to ensure concurrent tests only pull the value once at startup. While it is
// mainly used for tests, it also ensures safely with the chance the value is overwritten during
// runtime.
var envOnce sync.Once

// GetCurrentEnvironment returns the environment the forwarder is running
// within, defaulting to development when unset or unknown.
func GetCurrentEnvironment() string {
	envOnce.Do(func() {
		currentEnvironment = os.Getenv("environment")

		if currentEnvironment == "" {
			currentEnvironment = DefaultEnvironment
			return
		}

		for _, s := range []string{"staging", "production", "development"} {
			if currentEnvironment == s {
				currentEnvironment = s
				return
			}
		}

		currentEnvironment = DefaultEnvironment
	})

	return currentEnvironment
}

// Judge0 holds everything required to reach the judge0 submissions API.
type Judge0 struct {
	// The base URL of the judge0 deployment, without the /submissions path.
	APIURL string `validate:"required,url"`
	// Sent with every submission in the td-auth-token header.
	AuthToken string `validate:"required"`
	// Bounds the whole submission call including the time judge0 spends
	// running the submitted code.
	Timeout time.Duration `validate:"gt=0"`
}

// NewJudge0 builds the judge0 configuration, applying the default URL when
// apiURL is empty and trimming any trailing slash.
func NewJudge0(apiURL, authToken string, timeout time.Duration) *Judge0 {
	apiURL = strings.TrimRight(strings.TrimSpace(apiURL), "/")

	if apiURL == "" {
		apiURL = DefaultJudge0APIURL
	}

	if timeout <= 0 {
		timeout = DefaultJudge0Timeout
	}

	return &Judge0{
		APIURL:    apiURL,
		AuthToken: authToken,
		Timeout:   timeout,
	}
}

// Validate reports ErrInvalidConfiguration with readable reasons when a
// required value is missing or malformed.
func (j *Judge0) Validate() error {
	validate, translator := validation.Default()

	if err := validate.Struct(j); err != nil {
		reasons := validation.TranslateError(err, translator)

		if len(reasons) == 0 {
			return errors.Wrap(ErrInvalidConfiguration, err.Error())
		}

		return errors.Wrap(ErrInvalidConfiguration, strings.Join(reasons, ", "))
	}

	return nil
}

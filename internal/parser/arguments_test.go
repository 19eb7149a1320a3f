package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code-runner/internal/config"
)

func TestParseArguments(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		t.Setenv("JUDGE0_API_URL", "")
		t.Setenv("JUDGE0_AUTH_TOKEN", "")

		args, err := ParseArguments("test", nil)
		require.NoError(t, err)

		judge0 := args.Judge0()
		assert.Equal(t, config.DefaultJudge0APIURL, judge0.APIURL)
		assert.Equal(t, "", judge0.AuthToken)
		assert.Equal(t, 30*time.Second, judge0.Timeout)
		assert.Equal(t, ":8080", args.ListenAddress)
	})

	t.Run("should read the environment", func(t *testing.T) {
		t.Setenv("JUDGE0_API_URL", "https://judge0.internal/")
		t.Setenv("JUDGE0_AUTH_TOKEN", "secret")
		t.Setenv("JUDGE0_TIMEOUT", "12s")
		t.Setenv("LOG_LEVEL", "warn")

		args, err := ParseArguments("test", nil)
		require.NoError(t, err)

		judge0 := args.Judge0()
		assert.Equal(t, "https://judge0.internal", judge0.APIURL)
		assert.Equal(t, "secret", judge0.AuthToken)
		assert.Equal(t, 12*time.Second, judge0.Timeout)
		assert.Equal(t, "warn", args.LogLevel)
	})

	t.Run("should prefer flags over the environment", func(t *testing.T) {
		t.Setenv("JUDGE0_AUTH_TOKEN", "from-env")

		args, err := ParseArguments("test", []string{"-judge0-auth-token", "from-flag"})
		require.NoError(t, err)

		assert.Equal(t, "from-flag", args.Judge0AuthToken)
	})

	t.Run("should fail on unknown flags", func(t *testing.T) {
		_, err := ParseArguments("test", []string{"-unknown"})
		assert.Error(t, err)
	})
}

package forwarder

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"code-runner/internal/config"
	"code-runner/internal/judge0"
)

// Forwarder relays one code submission per invocation to judge0.
type Forwarder struct {
	config    *config.Judge0
	submitter judge0.Submitter
}

func New(config *config.Judge0, submitter judge0.Submitter) *Forwarder {
	return &Forwarder{config: config, submitter: submitter}
}

// Handle runs a single invocation. A judge0 reply other than 201 Created is
// relayed with its status code, anything that points at a broken deployment
// (missing configuration, unreachable judge0, a malformed created reply) is
// returned as an error and no response is produced.
func (f *Forwarder) Handle(ctx context.Context, event Event) (Response, error) {
	logger := log.With().Str("request_id", requestID(ctx)).Logger()
	ctx = logger.WithContext(ctx)

	logger.Debug().Bool("body", event.Body != nil).Msg("invocation received")

	if err := f.config.Validate(); err != nil {
		logger.Error().Err(err).Msg("cannot forward submission")
		return Response{}, err
	}

	submission := ParseSubmissionRequest(event.Body).Submission()

	logger.Debug().
		Int("languageId", submission.LanguageID).
		Str("language", judge0.LanguageName(submission.LanguageID)).
		Int("sourceLength", len(submission.SourceCode)).
		Bool("stdin", submission.Stdin != nil).
		Msg("submitting code to judge0")

	reply, err := f.submitter.Submit(ctx, submission)

	if err != nil {
		logger.Error().Err(err).Msg("judge0 submission failed")
		return Response{}, err
	}

	logger.Debug().
		Int("status", reply.StatusCode).
		Int("replyLength", len(reply.Body)).
		Msg("submission response")

	if reply.StatusCode != http.StatusCreated {
		return rejected(reply), nil
	}

	result, err := judge0.ParseResult(reply.Body)

	if err != nil {
		logger.Error().Err(err).Msg("judge0 returned an unreadable result")
		return Response{}, err
	}

	logFinished(&logger, result)

	diagnostics, err := result.Diagnostics()

	if err != nil {
		logger.Error().Err(err).Msg("judge0 returned unreadable diagnostics")
		return Response{}, err
	}

	if diagnostics.Stderr != "" {
		logger.Warn().Str("stderr", diagnostics.Stderr).Msg("stderr decoded")
	}

	if diagnostics.CompileOutput != "" {
		logger.Warn().Str("compileOutput", diagnostics.CompileOutput).Msg("compile output decoded")
	}

	return Response{StatusCode: http.StatusOK, Body: string(reply.Body)}, nil
}

// rejected relays a judge0 reply that did not create a submission, the body
// is passed on as text and never parsed.
func rejected(reply *judge0.Reply) Response {
	var body bytes.Buffer

	encoder := json.NewEncoder(&body)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(ErrorBody{Error: string(reply.Body)})

	return Response{
		StatusCode: reply.StatusCode,
		Body:       strings.TrimSuffix(body.String(), "\n"),
	}
}

// logFinished warns when judge0 failed internally or when a waited
// submission still reports a pending status.
func logFinished(logger *zerolog.Logger, result *judge0.Result) {
	event := logger.Info()
	message := "execution finished"

	switch {
	case result.Status.ID.Pending():
		event = logger.Warn()
		message = "execution still pending after waiting"
	case result.Status.ID == judge0.StatusInternalError:
		event = logger.Warn()
		message = "judge0 internal error"
	}

	event.
		Str("token", result.Token).
		Int64("statusId", int64(result.Status.ID)).
		Str("status", result.Status.Description).
		Str("time", result.Time).
		Int64("memoryKb", result.Memory).
		Int64("exitCode", result.ExitCode).
		Str("judge0Message", result.Message).
		Int("stdoutLength", result.StdoutLength()).
		Msg(message)
}

func requestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}

	return uuid.NewString()
}

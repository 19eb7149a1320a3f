package judge0

import (
	"encoding/base64"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

var (
	// ErrMalformedResult is returned when a created submission reply is not
	// a JSON object.
	ErrMalformedResult = errors.New("malformed judge0 result")
	// ErrMalformedDiagnostic is returned when stderr or compile_output cannot
	// be decoded from base64 into text.
	ErrMalformedDiagnostic = errors.New("malformed judge0 diagnostic")
)

type StatusID int64

// Judge0 execution statuses, a submission leaves the pending states once the
// code has been compiled and run.
const (
	StatusInQueue       StatusID = 1
	StatusProcessing    StatusID = 2
	StatusInternalError StatusID = 13
)

func (s StatusID) Pending() bool {
	return s == StatusInQueue || s == StatusProcessing
}

type Status struct {
	ID          StatusID
	Description string
}

// Result is the part of a judge0 reply used for logging. Fields the reply
// omits or sets to null stay at their zero value.
type Result struct {
	Token    string
	Status   Status
	Time     string
	Memory   int64
	ExitCode int64
	Message  string

	stdout        gjson.Result
	stderr        gjson.Result
	compileOutput gjson.Result
}

// Diagnostics are the decoded copies of the base64 encoded error streams.
type Diagnostics struct {
	Stderr        string
	CompileOutput string
}

func ParseResult(body []byte) (*Result, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.Wrap(ErrMalformedResult, "reply is not valid json")
	}

	parsed := gjson.ParseBytes(body)

	if !parsed.IsObject() {
		return nil, errors.Wrapf(ErrMalformedResult, "reply is a json %s, not an object", parsed.Type)
	}

	return &Result{
		Token: parsed.Get("token").String(),
		Status: Status{
			ID:          StatusID(parsed.Get("status.id").Int()),
			Description: parsed.Get("status.description").String(),
		},
		Time:          parsed.Get("time").String(),
		Memory:        parsed.Get("memory").Int(),
		ExitCode:      parsed.Get("exit_code").Int(),
		Message:       parsed.Get("message").String(),
		stdout:        parsed.Get("stdout"),
		stderr:        parsed.Get("stderr"),
		compileOutput: parsed.Get("compile_output"),
	}, nil
}

// StdoutLength is the length of the still encoded stdout field.
func (r *Result) StdoutLength() int {
	return len(r.stdout.Str)
}

// Diagnostics decodes stderr and compile_output independently. Missing, null
// and empty fields decode to an empty string.
func (r *Result) Diagnostics() (Diagnostics, error) {
	stderr, err := decodeDiagnostic("stderr", r.stderr)

	if err != nil {
		return Diagnostics{}, err
	}

	compileOutput, err := decodeDiagnostic("compile_output", r.compileOutput)

	if err != nil {
		return Diagnostics{}, err
	}

	return Diagnostics{Stderr: stderr, CompileOutput: compileOutput}, nil
}

func decodeDiagnostic(field string, value gjson.Result) (string, error) {
	switch value.Type {
	case gjson.Null:
		return "", nil
	case gjson.String:
	default:
		return "", errors.Wrapf(ErrMalformedDiagnostic, "%s is a json %s, not a string", field, value.Type)
	}

	if value.Str == "" {
		return "", nil
	}

	// judge0 wraps long base64 values over multiple lines, the standard
	// decoder skips the line breaks.
	decoded, err := base64.StdEncoding.DecodeString(value.Str)

	if err != nil {
		return "", errors.Wrapf(ErrMalformedDiagnostic, "%s: %s", field, err)
	}

	if !utf8.Valid(decoded) {
		return "", errors.Wrapf(ErrMalformedDiagnostic, "%s is not valid utf-8", field)
	}

	return string(decoded), nil
}

package forwarder

import (
	"strconv"

	"github.com/tidwall/gjson"

	"code-runner/internal/judge0"
)

const (
	DefaultSourceCode = "print('Hello, World!')"
	DefaultLanguageID = 71
)

// SubmissionRequest is what the caller asked to run. A nil Stdin means no
// standard input is sent to judge0.
type SubmissionRequest struct {
	SourceCode string
	LanguageID int
	Stdin      *string
}

// ParseSubmissionRequest never fails. A missing body, a body that is not a
// JSON object, or a field of the wrong type all fall back to the defaults.
func ParseSubmissionRequest(body *string) SubmissionRequest {
	request := SubmissionRequest{
		SourceCode: DefaultSourceCode,
		LanguageID: DefaultLanguageID,
	}

	if body == nil || !gjson.Valid(*body) {
		return request
	}

	parsed := gjson.Parse(*body)

	if !parsed.IsObject() {
		return request
	}

	if sourceCode := parsed.Get("source_code"); sourceCode.Type == gjson.String {
		request.SourceCode = sourceCode.Str
	}

	if languageID := parsed.Get("language_id"); languageID.Type == gjson.Number {
		if id, err := strconv.Atoi(languageID.Raw); err == nil {
			request.LanguageID = id
		}
	}

	if stdin := parsed.Get("stdin"); stdin.Type == gjson.String && stdin.Str != "" {
		value := stdin.Str
		request.Stdin = &value
	}

	return request
}

// Submission builds the judge0 payload. Empty stdin is sent as null, some
// judge0 languages fail when given empty input.
func (r SubmissionRequest) Submission() *judge0.Submission {
	submission := &judge0.Submission{
		LanguageID: r.LanguageID,
		SourceCode: r.SourceCode,
	}

	if r.Stdin != nil && *r.Stdin != "" {
		stdin := *r.Stdin
		submission.Stdin = &stdin
	}

	return submission
}

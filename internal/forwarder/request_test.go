package forwarder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPointer(value string) *string {
	return &value
}

func TestParseSubmissionRequest(t *testing.T) {
	defaults := SubmissionRequest{SourceCode: DefaultSourceCode, LanguageID: DefaultLanguageID}

	tests := []struct {
		name string
		body *string
		want SubmissionRequest
	}{{
		name: "should default without a body",
		body: nil,
		want: defaults,
	}, {
		name: "should default on invalid json",
		body: stringPointer("{source_code: x}"),
		want: defaults,
	}, {
		name: "should default on a json string",
		body: stringPointer(`"print(1)"`),
		want: defaults,
	}, {
		name: "should default on a json number",
		body: stringPointer(`71`),
		want: defaults,
	}, {
		name: "should read every field",
		body: stringPointer(`{"source_code": "cHJpbnQoMSk=", "language_id": 63, "stdin": "MQ=="}`),
		want: SubmissionRequest{SourceCode: "cHJpbnQoMSk=", LanguageID: 63, Stdin: stringPointer("MQ==")},
	}, {
		name: "should default missing fields individually",
		body: stringPointer(`{"language_id": 62}`),
		want: SubmissionRequest{SourceCode: DefaultSourceCode, LanguageID: 62},
	}, {
		name: "should treat empty stdin as absent",
		body: stringPointer(`{"stdin": ""}`),
		want: defaults,
	}, {
		name: "should treat null stdin as absent",
		body: stringPointer(`{"stdin": null}`),
		want: defaults,
	}, {
		name: "should treat a non string stdin as absent",
		body: stringPointer(`{"source_code": "x", "stdin": 5}`),
		want: SubmissionRequest{SourceCode: "x", LanguageID: DefaultLanguageID},
	}, {
		name: "should keep an explicitly empty source",
		body: stringPointer(`{"source_code": ""}`),
		want: SubmissionRequest{SourceCode: "", LanguageID: DefaultLanguageID},
	}, {
		name: "should default a language id that is not an integer",
		body: stringPointer(`{"language_id": "71"}`),
		want: defaults,
	}, {
		name: "should default a fractional language id",
		body: stringPointer(`{"language_id": 71.5}`),
		want: defaults,
	}, {
		name: "should forward unknown language ids",
		body: stringPointer(`{"language_id": 999}`),
		want: SubmissionRequest{SourceCode: DefaultSourceCode, LanguageID: 999},
	}, {
		name: "should ignore unrelated fields",
		body: stringPointer(` {"source_code": "x", "expected_output": "y"} `),
		want: SubmissionRequest{SourceCode: "x", LanguageID: DefaultLanguageID},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSubmissionRequest(tt.body))
		})
	}
}

func TestSubmissionRequestSubmission(t *testing.T) {
	t.Run("should serialize absent stdin as null", func(t *testing.T) {
		payload, err := json.Marshal(SubmissionRequest{SourceCode: "x", LanguageID: 71, Stdin: stringPointer("")}.Submission())

		require.NoError(t, err)
		assert.JSONEq(t, `{"language_id": 71, "source_code": "x", "stdin": null}`, string(payload))
	})

	t.Run("should copy stdin", func(t *testing.T) {
		stdin := stringPointer("MQ==")
		submission := SubmissionRequest{SourceCode: "x", LanguageID: 71, Stdin: stdin}.Submission()

		require.NotNil(t, submission.Stdin)
		assert.Equal(t, "MQ==", *submission.Stdin)
		assert.NotSame(t, stdin, submission.Stdin)
	})
}

func TestEventUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		event   string
		want    *string
		wantErr bool
	}{{
		name:  "should read a string body",
		event: `{"version": "2.0", "body": "{\"stdin\": \"MQ==\"}", "isBase64Encoded": false}`,
		want:  stringPointer(`{"stdin": "MQ=="}`),
	}, {
		name:  "should treat a missing body as absent",
		event: `{"rawPath": "/"}`,
	}, {
		name:  "should treat a null body as absent",
		event: `{"body": null}`,
	}, {
		name:  "should treat an object body as absent",
		event: `{"body": {"source_code": "x"}}`,
	}, {
		name:  "should treat a numeric body as absent",
		event: `{"body": 12}`,
	}, {
		name:  "should accept a null event",
		event: `null`,
	}, {
		name:    "should reject an event that is not an object",
		event:   `["body"]`,
		wantErr: true,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var event Event
			err := json.Unmarshal([]byte(tt.event), &event)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, event.Body)
		})
	}
}

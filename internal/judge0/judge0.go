package judge0

//go:generate mockgen -destination=mock_judge0/mock_judge0.go -package=mock_judge0 code-runner/internal/judge0 Submitter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"code-runner/internal/config"
)

// AuthHeader carries the judge0 auth token on every request.
const AuthHeader = "td-auth-token"

// ErrTransport marks failures to reach judge0 or to read its reply,
// including the request timeout.
var ErrTransport = errors.New("judge0 transport failure")

// Submission is the body posted to the judge0 submissions endpoint. Stdin is
// always serialized, a nil value is sent as null.
type Submission struct {
	LanguageID int     `json:"language_id"`
	SourceCode string  `json:"source_code"`
	Stdin      *string `json:"stdin"`
}

// Reply is the raw judge0 response, kept byte for byte so callers can relay
// it without re-encoding.
type Reply struct {
	StatusCode int
	Body       []byte
}

type Submitter interface {
	Submit(ctx context.Context, submission *Submission) (*Reply, error)
}

// Client submits code to judge0 and waits for the result in the same call.
type Client struct {
	config     *config.Judge0
	httpClient *http.Client
}

func NewClient(config *config.Judge0) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// SubmissionsURL returns the synchronous, base64 encoded submissions endpoint.
func (c *Client) SubmissionsURL() (string, error) {
	endpoint, err := url.Parse(c.config.APIURL + "/submissions")

	if err != nil {
		return "", errors.Wrapf(err, "invalid judge0 api url %q", c.config.APIURL)
	}

	endpoint.RawQuery = url.Values{
		"base64_encoded": []string{"true"},
		"wait":           []string{"true"},
	}.Encode()

	return endpoint.String(), nil
}

// Submit posts the submission once. Any status code is returned as a Reply,
// only transport problems are reported as errors.
func (c *Client) Submit(ctx context.Context, submission *Submission) (*Reply, error) {
	endpoint, err := c.SubmissionsURL()

	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(submission)

	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal submission")
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))

	if err != nil {
		return nil, errors.Wrap(err, "failed to create submission request")
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set(AuthHeader, c.config.AuthToken)

	zerolog.Ctx(ctx).Debug().Str("endpoint", endpoint).Dur("timeout", c.config.Timeout).Msg("posting submission")

	response, err := c.httpClient.Do(request)

	if err != nil {
		return nil, errors.Wrap(ErrTransport, err.Error())
	}

	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)

	if err != nil {
		return nil, errors.Wrapf(ErrTransport, "failed to read judge0 reply: %s", err)
	}

	return &Reply{StatusCode: response.StatusCode, Body: body}, nil
}

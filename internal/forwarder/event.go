package forwarder

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Event is the inbound trigger event. Only the body is used, and only when
// it is a JSON string, any other body type is treated as absent.
type Event struct {
	Body *string
}

// UnmarshalJSON accepts any JSON object, trigger events carry many fields
// that the forwarder has no use for.
func (e *Event) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("event is not valid json")
	}

	parsed := gjson.ParseBytes(data)

	if parsed.Type == gjson.Null {
		return nil
	}

	if !parsed.IsObject() {
		return errors.Errorf("event is a json %s, not an object", parsed.Type)
	}

	if body := parsed.Get("body"); body.Type == gjson.String {
		value := body.Str
		e.Body = &value
	}

	return nil
}

// Response is returned to the trigger, statusCode and body are the only
// fields a function URL or API gateway integration needs.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// ErrorBody is the body of a response relaying a judge0 rejection.
type ErrorBody struct {
	Error string `json:"error"`
}

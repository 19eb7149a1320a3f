package routing

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"code-runner/internal/forwarder"
)

// maxRequestBodyBytes bounds a single submission body at 2MB.
const maxRequestBodyBytes = 2 << 20

// Invoker runs one forwarder invocation, satisfied by *forwarder.Forwarder.
type Invoker interface {
	Handle(ctx context.Context, event forwarder.Event) (forwarder.Response, error)
}

func handleJSONResponse(w http.ResponseWriter, body any, code int) {
	response, _ := json.Marshal(body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func handleReadError(w http.ResponseWriter, err error) {
	var maxBytesError *http.MaxBytesError

	if errors.As(err, &maxBytesError) {
		handleJSONResponse(w, ErrorResponse{
			Reason: "Request body must not be larger than 2MB",
		}, http.StatusRequestEntityTooLarge)

		return
	}

	details := err.Error()

	handleJSONResponse(w, ErrorResponse{
		Reason:  "Failed to read request body",
		Details: &details,
	}, http.StatusBadRequest)
}

// ForwarderHandler turns a plain HTTP request into a trigger event, the
// request body becomes the event body unchanged.
type ForwarderHandler struct {
	Forwarder Invoker
}

func (h ForwarderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	data, err := io.ReadAll(r.Body)

	if err != nil {
		handleReadError(w, err)
		return
	}

	event := forwarder.Event{}

	if len(data) > 0 {
		body := string(data)
		event.Body = &body
	}

	response, err := h.Forwarder.Handle(r.Context(), event)

	if err != nil {
		log.Error().Err(err).Msg("failed to handle invocation")

		details := err.Error()

		handleJSONResponse(w, ErrorResponse{
			Reason:  "Failed to handle request",
			Details: &details,
		}, http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.StatusCode)
	_, _ = w.Write([]byte(response.Body))
}

func HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func NewRouter(invoker Invoker) *mux.Router {
	r := mux.NewRouter()

	r.Handle("/", ForwarderHandler{Forwarder: invoker}).Methods(http.MethodPost)
	r.HandleFunc("/languages", HandleGetSupportedLanguages).Methods(http.MethodGet)
	r.HandleFunc("/health", HandleHealth).Methods(http.MethodGet)

	return r
}

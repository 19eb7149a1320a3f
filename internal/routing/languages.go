package routing

import (
	"net/http"

	"code-runner/internal/judge0"
)

func HandleGetSupportedLanguages(w http.ResponseWriter, _ *http.Request) {
	handleJSONResponse(w, SupportedLanguagesResponse{
		Languages: judge0.SupportedLanguages(),
	}, http.StatusOK)
}

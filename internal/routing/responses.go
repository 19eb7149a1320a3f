package routing

import (
	"code-runner/internal/judge0"
)

type ErrorResponse struct {
	Reason  string  `json:"reason"`
	Details *string `json:"details,omitempty"`
}

type SupportedLanguagesResponse struct {
	Languages []judge0.Language `json:"languages"`
}

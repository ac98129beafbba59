package response

import "eolia_backend/internal/domain/entities"

// TransitionErrorResponse is the 400 body for a rejected status change; it
// tells the caller which transitions the current status actually allows.
type TransitionErrorResponse struct {
	Code               string   `json:"code"`
	Message            string   `json:"message"`
	AllowedTransitions []string `json:"allowedTransitions"`
}

func FromTransitionError(te *entities.TransitionError) TransitionErrorResponse {
	allowed := make([]string, 0, len(te.AllowedNext))
	for _, s := range te.AllowedNext {
		allowed = append(allowed, string(s))
	}
	return TransitionErrorResponse{
		Code:               "INVALID_STATUS_TRANSITION",
		Message:            te.Error(),
		AllowedTransitions: allowed,
	}
}

// ValidationErrorResponse aggregates per-field failures for form payloads.
type ValidationErrorResponse struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Errors  []entities.FieldError `json:"errors"`
}

package response

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

func Success() SuccessResponse {
	return SuccessResponse{Success: true}
}

// ValidationError builds the error body for the first failed field.
// Field names come from the json tags, so the message matches the wire
// format ("hallId is required").
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	if len(errs) == 0 {
		return Error("invalid request")
	}

	err := errs[0]

	switch err.ActualTag() {
	case "required":
		return Error(fmt.Sprintf("%s is required", err.Field()))
	default:
		return Error(fmt.Sprintf("%s is invalid", err.Field()))
	}
}

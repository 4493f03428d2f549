package validation

import "fmt"

// ErrorValidateResponse is a single field-level validation failure as exposed
// on the HTTP error contract.
type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e ErrorValidateResponse) Error() string {
	return fmt.Sprintf("code: %s, field: %s, message: %s", e.Code, e.Field, e.Message)
}

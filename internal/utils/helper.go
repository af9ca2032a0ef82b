package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	appErrors "github.com/leaflane/storefront-platform/internal/errors"
)

// DecodeJSONBody reads and unmarshals the request body into dest; empty or
// malformed bodies come back as ValidationError so handlers can pass the
// result straight to the response writer.
func DecodeJSONBody(r *http.Request, dest any) error {

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return appErrors.BadRequestError("Failed to read request body").WithError(err)
	}

	defer r.Body.Close()

	if len(body) == 0 {
		return appErrors.ValidationError("Request body cannot be empty").WithReason("missing_body")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return appErrors.ValidationError("Invalid JSON format").WithReason("invalid_json").WithError(err)
	}

	return nil
}

// ValidateStruct runs the validator over data and wraps failures in a
// ValidationError carrying the offending fields.
func ValidateStruct(validate *validator.Validate, data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		return appErrors.ValidationError("Validation failed").
			WithReason("invalid_fields").
			WithDetail(validationErrs.Error()).
			WithError(validationErrs)
	}

	return appErrors.InternalError("Unexpected validation error").WithError(err)
}

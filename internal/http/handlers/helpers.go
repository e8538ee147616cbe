package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"careerconnect/internal/common"
)

var validate = validator.New()

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return common.NewValidationError("invalid request body", map[string]string{"body": "body must be valid JSON"})
	}
	return nil
}

// validateRequest runs struct tag validation once at the boundary so domain
// logic never sees a malformed request.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = "failed " + fe.Tag() + " validation"
		}
	}
	return common.NewValidationError("invalid request", fields)
}

// idFromPath extracts the path segment at index (zero-based, leading slash
// stripped) as a UUID: /applications/{id}/verify has the id at index 1.
func idFromPath(r *http.Request, index int) (common.UUID, error) {
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if index >= len(segments) {
		return "", common.NewValidationError("invalid path", map[string]string{"id": "id is required"})
	}
	parsed, err := common.ParseUUID(segments[index])
	if err != nil {
		return "", common.NewValidationError("invalid path", map[string]string{"id": "invalid uuid"})
	}
	return parsed, nil
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "authentication required", nil)
}

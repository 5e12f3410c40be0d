package validators

import (
	"net/http"
	"strings"

	pkgerrors "github.com/velora-beauty/procurement-backend/pkg/errors"
)

// RequireQueryString returns a trimmed, non-blank query parameter.
func RequireQueryString(r *http.Request, key string) (string, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "query parameter is required").WithDetails(map[string]any{"field": key})
	}
	return raw, nil
}

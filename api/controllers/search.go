package controllers

import (
	"net/http"

	"github.com/velora-beauty/procurement-backend/api/responses"
	"github.com/velora-beauty/procurement-backend/api/validators"
	"github.com/velora-beauty/procurement-backend/internal/search"
	"github.com/velora-beauty/procurement-backend/pkg/enums"
	pkgerrors "github.com/velora-beauty/procurement-backend/pkg/errors"
	"github.com/velora-beauty/procurement-backend/pkg/logger"
)

// SearchQuotes resolves marketplace quotes for ?q=<product>. A collaborator
// failure surfaces as a dependency error; an empty but successful answer is a
// normal not_found result, not an error.
func SearchQuotes(coordinator *search.Coordinator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := validators.RequireQueryString(r, "q")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := coordinator.Query(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if result.Outcome == enums.SearchOutcomeError {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeDependency, result.Reason).
					WithDetails(map[string]any{"query": result.Query}))
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// CurrentSearch exposes the coordinator's last committed state.
func CurrentSearch(coordinator *search.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, coordinator.Current())
	}
}

// Package queries contains read-only use cases. Handlers read straight from
// the database with raw SQL and return response structs shaped for display;
// they never load aggregates.
package queries

import (
	"tracking/internal/core/domain/model/access"
	"tracking/internal/pkg/errs"

	"github.com/lib/pq"
)

// ErrViewerIsRequired is returned when a query is built without the signed-in user.
var ErrViewerIsRequired = errs.NewValueIsRequiredError("viewer")

func validateViewer(viewer *access.User) error {
	if viewer == nil {
		return ErrViewerIsRequired
	}
	return viewer.Validate()
}

// channelScope returns the arguments for a "(? OR channel = ANY(?::text[]))"
// clause. It is access.User.CanSee in SQL: super viewers see everything,
// others only their channels.
func channelScope(viewer *access.User) []any {
	return []any{viewer.IsSuper(), pq.Array(viewer.Channels())}
}

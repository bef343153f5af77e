package commands

import (
	"slices"
	"strings"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"
)

// ErrActorIsRequired is returned when a command is built without the signed-in user.
var ErrActorIsRequired = errs.NewValueIsRequiredError("actor")

func validateActor(actor *access.User) error {
	if actor == nil {
		return ErrActorIsRequired
	}
	return actor.Validate()
}

// requireVisible hides orders of channels the actor cannot see behind the
// same not-found error an unknown identifier gets.
func requireVisible(actor *access.User, o *order.Order) error {
	if !actor.CanSee(o.Details().Channel) {
		return errs.NewObjectNotFoundError("order", o.Identifier())
	}
	return nil
}

// cleanIdentifiers trims, drops blanks and removes duplicates keeping first-seen order.
func cleanIdentifiers(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		id := strings.TrimSpace(r)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func uniqueBlockIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

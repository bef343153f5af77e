package archive

import (
	"strings"
	"time"
)

// AllChannels is the wire value meaning "do not filter by channel".
const AllChannels = "ALL"

// Filter narrows a history listing. Zero fields do not filter.
type Filter struct {
	// ClientContains matches client names case-insensitively.
	ClientContains string
	// LocalityContains matches destination localities case-insensitively.
	LocalityContains string
	// Channel matches exactly.
	Channel string
	// From is the first archive day included.
	From *time.Time
	// To is the last archive day included.
	To *time.Time
}

// NewFilter builds a filter from raw query values. Dates are YYYY-MM-DD in
// loc; malformed dates are ignored rather than rejected.
func NewFilter(client, locality, channel, startDate, endDate string, loc *time.Location) Filter {
	f := Filter{
		ClientContains:   strings.TrimSpace(client),
		LocalityContains: strings.TrimSpace(locality),
	}

	if c := strings.TrimSpace(channel); c != "" && c != AllChannels {
		f.Channel = c
	}
	if d, err := time.ParseInLocation(time.DateOnly, startDate, loc); err == nil {
		f.From = &d
	}
	if d, err := time.ParseInLocation(time.DateOnly, endDate, loc); err == nil {
		f.To = &d
	}

	return f
}

// Until returns the exclusive upper bound for ArchivedAt, or nil.
func (f Filter) Until() *time.Time {
	if f.To == nil {
		return nil
	}
	end := f.To.AddDate(0, 0, 1)
	return &end
}

// Matches applies the filter in memory.
func (f Filter) Matches(e *Entry) bool {
	if f.ClientContains != "" && !containsFold(e.Details.Client, f.ClientContains) {
		return false
	}
	if f.LocalityContains != "" && !containsFold(e.Details.Locality, f.LocalityContains) {
		return false
	}
	if f.Channel != "" && e.Details.Channel != f.Channel {
		return false
	}
	if f.From != nil && e.ArchivedAt.Before(*f.From) {
		return false
	}
	if until := f.Until(); until != nil && !e.ArchivedAt.Before(*until) {
		return false
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

package order

import (
	"math"
	"time"
)

// Priority ranks an order by how close its delivery date is.
type Priority string

const (
	Overdue Priority = "Vencida"
	Urgent  Priority = "Urgente"
	Medium  Priority = "Media"
	Normal  Priority = "Normal"
	Low     Priority = "Baja"
)

const (
	urgentWithinDays = 2
	mediumWithinDays = 7
)

// PriorityFor compares an ISO delivery date with the calendar day of now.
// Orders without a parseable date get Low.
func PriorityFor(deliveryDate string, now time.Time) Priority {
	due, err := time.ParseInLocation(time.DateOnly, deliveryDate, now.Location())
	if err != nil {
		return Low
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := int(math.Round(due.Sub(today).Hours() / 24))

	switch {
	case days < 0:
		return Overdue
	case days <= urgentWithinDays:
		return Urgent
	case days <= mediumWithinDays:
		return Medium
	default:
		return Normal
	}
}

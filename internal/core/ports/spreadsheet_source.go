package ports

import (
	"context"

	"tracking/internal/core/domain/services"
)

// SpreadsheetSource fetches and parses the upstream order workbook.
type SpreadsheetSource interface {
	// Rows returns the parsed rows of the configured sheet. An empty sheet
	// yields an empty slice and no error.
	Rows(ctx context.Context) ([]services.ImportRow, error)
}

package spreadsheet

import (
	"context"
	"fmt"
	"os"

	"tracking/internal/core/domain/services"
)

// FileSource reads the workbook from a local path.
type FileSource struct {
	path  string
	sheet string
}

func NewFileSource(path, sheet string) *FileSource {
	return &FileSource{path: path, sheet: sheet}
}

// Path is the watched file.
func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) Rows(ctx context.Context) ([]services.ImportRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f, s.sheet)
}

package queries

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/archive"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrExportArchivedOrdersQueryIsNotConstructed = errors.New(
	"ExportArchivedOrdersQuery must be created via NewExportArchivedOrdersQuery constructor",
)

// HistoryWorkbookWriter renders history rows as a spreadsheet.
type HistoryWorkbookWriter interface {
	WriteHistory(w io.Writer, rows []ArchivedOrder) error
}

type ExportArchivedOrdersQuery struct {
	listing GetArchivedOrdersQuery

	guard guard.ConstructorGuard
}

func NewExportArchivedOrdersQuery(viewer *access.User, filter archive.Filter) (ExportArchivedOrdersQuery, error) {
	listing, err := NewGetArchivedOrdersQuery(viewer, filter)
	if err != nil {
		return ExportArchivedOrdersQuery{}, err
	}
	return ExportArchivedOrdersQuery{listing: listing, guard: guard.NewConstructorGuard()}, nil
}

func (q ExportArchivedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportArchivedOrdersQueryIsNotConstructed)
}

type ExportArchivedOrdersQueryResponse struct {
	Filename string
	Content  []byte
}

type ExportArchivedOrdersQueryHandler struct {
	reader GetArchivedOrdersQueryHandler
	writer HistoryWorkbookWriter
	clock  func() time.Time
}

func NewExportArchivedOrdersQueryHandler(
	reader GetArchivedOrdersQueryHandler,
	writer HistoryWorkbookWriter,
	clock func() time.Time,
) ExportArchivedOrdersQueryHandler {
	return ExportArchivedOrdersQueryHandler{reader: reader, writer: writer, clock: clock}
}

func (h ExportArchivedOrdersQueryHandler) Handle(
	ctx context.Context,
	query ExportArchivedOrdersQuery,
) (ExportArchivedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ExportArchivedOrdersQueryResponse{}, err
	}

	rows, err := h.reader.Handle(ctx, query.listing)
	if err != nil {
		return ExportArchivedOrdersQueryResponse{}, err
	}
	if len(rows) == 0 {
		return ExportArchivedOrdersQueryResponse{}, errs.NewObjectNotFoundError("historial", "filtros")
	}

	return render(h.writer, rows, h.clock())
}

func render(writer HistoryWorkbookWriter, rows []ArchivedOrder, now time.Time) (ExportArchivedOrdersQueryResponse, error) {
	var buf bytes.Buffer
	if err := writer.WriteHistory(&buf, rows); err != nil {
		return ExportArchivedOrdersQueryResponse{}, err
	}
	return ExportArchivedOrdersQueryResponse{
		Filename: "historial_logistica_" + now.Format(time.DateOnly) + ".xlsx",
		Content:  buf.Bytes(),
	}, nil
}

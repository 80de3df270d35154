package app

import (
	"context"

	"association-reports/internal/db"
)

// ReportService is the single interface all adapters (web, CLI) call for
// report generation. Implementations contain no HTTP handler or display
// logic; generation outcomes are value-typed results, never panics or raw
// errors across the boundary.
type ReportService interface {
	// GenerateTeacherStatement fetches the statement data for one teacher,
	// resolves the template, and renders the PDF. Fetch failures, missing
	// data, bad templates, and builder errors all come back as a failed
	// result with a code.
	GenerateTeacherStatement(ctx context.Context, req GenerateStatementRequest) *GenerateResult

	// GenerateAssociationSummary does the same for the association-wide summary.
	GenerateAssociationSummary(ctx context.Context, req GenerateSummaryRequest) *GenerateResult

	// GenerateBulkStatements renders one statement per teacher ID,
	// sequentially. The loop continues past failures; every requested ID is
	// reported individually in the returned items.
	GenerateBulkStatements(ctx context.Context, req BulkStatementsRequest) *BulkResult

	// ListTemplates returns the built-in templates plus any stored ones.
	ListTemplates(ctx context.Context) ([]TemplateInfo, error)

	// GetTemplate returns the JSON body of a stored or built-in template.
	// Returns db.ErrTemplateNotFound for unknown IDs.
	GetTemplate(ctx context.Context, id string) (*db.TemplateRecord, error)

	// SaveTemplate inserts or replaces a stored template. Fails when no
	// template store is configured. The body must decode as the template
	// type matching rec.Kind.
	SaveTemplate(ctx context.Context, rec db.TemplateRecord) error
}

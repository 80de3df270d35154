package app

import (
	"encoding/json"

	"association-reports/internal/data"
)

// GenerateStatementRequest asks for one teacher statement. Template
// resolution order: inline Template, then TemplateID via the store, then the
// built-in default.
type GenerateStatementRequest struct {
	Filters    data.StatementFilters
	TemplateID string
	// Template is an optional inline template override, JSON-encoded as a
	// core.StatementTemplate. It takes precedence over TemplateID.
	Template json.RawMessage
}

// GenerateSummaryRequest asks for one association summary.
type GenerateSummaryRequest struct {
	Filters    data.SummaryFilters
	TemplateID string
	// Template is an optional inline core.AssociationTemplate override.
	Template json.RawMessage
}

// BulkStatementsRequest asks for one statement per teacher ID, generated
// sequentially with a shared date window and template.
type BulkStatementsRequest struct {
	TeacherIDs []string
	StartDate  string
	EndDate    string
	TemplateID string
}

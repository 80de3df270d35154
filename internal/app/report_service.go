package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"association-reports/internal/core"
	"association-reports/internal/data"
	"association-reports/internal/db"
)

// perStatementSeconds is the rough per-report duration used for the bulk job
// estimate surfaced to the caller.
const perStatementSeconds = 2

// ErrNoTemplateStore is returned by SaveTemplate when the service runs
// without a database-backed template store.
var ErrNoTemplateStore = errors.New("no template store configured")

type reportService struct {
	fetcher data.Fetcher
	store   db.Store // nil when no database is configured
}

// NewReportService constructs a ReportService over the given data fetcher and
// optional template store. A nil store limits templates to the built-in
// defaults and disables the generation audit log.
func NewReportService(fetcher data.Fetcher, store db.Store) ReportService {
	return &reportService{fetcher: fetcher, store: store}
}

// ── Generation ────────────────────────────────────────────────────────────────

func (s *reportService) GenerateTeacherStatement(ctx context.Context, req GenerateStatementRequest) *GenerateResult {
	record, err := s.fetcher.TeacherStatementData(ctx, req.Filters)
	switch {
	case errors.Is(err, data.ErrNotFound):
		return failure(CodeNotFound, fmt.Sprintf("no statement data found for teacher %s", req.Filters.TeacherID))
	case err != nil:
		return failure(CodeFetchFailed, "failed to fetch statement data: "+err.Error())
	case record == nil:
		return failure(CodeNotFound, fmt.Sprintf("no statement data found for teacher %s", req.Filters.TeacherID))
	}

	tpl, err := s.resolveStatementTemplate(ctx, req.Template, req.TemplateID)
	if err != nil {
		return failure(CodeBadTemplate, err.Error())
	}

	pdf, err := core.BuildTeacherStatement(*record, tpl)
	if err != nil {
		return failure(CodeGenerationFailed, "failed to generate statement: "+err.Error())
	}

	name := core.StatementFileName(*record)
	s.audit(ctx, db.ReportLogEntry{
		Kind:        db.KindStatement,
		FileName:    name,
		FileSize:    int64(len(pdf)),
		TeacherID:   record.Teacher.EmployeeID,
		GeneratedBy: record.GeneratedBy,
	})

	return &GenerateResult{Success: true, FileName: name, FileSize: int64(len(pdf)), Data: pdf}
}

func (s *reportService) GenerateAssociationSummary(ctx context.Context, req GenerateSummaryRequest) *GenerateResult {
	record, err := s.fetcher.AssociationSummaryData(ctx, req.Filters)
	switch {
	case errors.Is(err, data.ErrNotFound):
		return failure(CodeNotFound, "no association summary data found for the selected period")
	case err != nil:
		return failure(CodeFetchFailed, "failed to fetch summary data: "+err.Error())
	case record == nil:
		return failure(CodeNotFound, "no association summary data found for the selected period")
	}

	tpl, err := s.resolveAssociationTemplate(ctx, req.Template, req.TemplateID)
	if err != nil {
		return failure(CodeBadTemplate, err.Error())
	}

	pdf, err := core.BuildAssociationSummary(*record, tpl)
	if err != nil {
		return failure(CodeGenerationFailed, "failed to generate summary: "+err.Error())
	}

	name := core.SummaryFileName(*record)
	s.audit(ctx, db.ReportLogEntry{
		Kind:        db.KindAssociation,
		FileName:    name,
		FileSize:    int64(len(pdf)),
		GeneratedBy: record.GeneratedBy,
	})

	return &GenerateResult{Success: true, FileName: name, FileSize: int64(len(pdf)), Data: pdf}
}

func (s *reportService) GenerateBulkStatements(ctx context.Context, req BulkStatementsRequest) *BulkResult {
	result := &BulkResult{
		Requested:        len(req.TeacherIDs),
		EstimatedSeconds: len(req.TeacherIDs) * perStatementSeconds,
		Items:            make([]BulkItemResult, 0, len(req.TeacherIDs)),
	}

	// Sequential by design: each generation owns its own Generator, and a
	// failure for one teacher never halts the rest of the run.
	for _, id := range req.TeacherIDs {
		one := s.GenerateTeacherStatement(ctx, GenerateStatementRequest{
			Filters: data.StatementFilters{
				TeacherID: id,
				StartDate: req.StartDate,
				EndDate:   req.EndDate,
			},
			TemplateID: req.TemplateID,
		})
		item := BulkItemResult{TeacherID: id, Success: one.Success}
		if one.Success {
			item.FileName = one.FileName
			item.FileSize = one.FileSize
			result.Succeeded++
		} else {
			item.Error = one.Error
			result.Failed++
		}
		result.Items = append(result.Items, item)
	}
	return result
}

// audit writes one row to the generated-reports log, best-effort. A logging
// failure never fails the report itself.
func (s *reportService) audit(ctx context.Context, entry db.ReportLogEntry) {
	if s.store == nil {
		return
	}
	if err := s.store.RecordReport(ctx, entry); err != nil {
		log.Printf("report audit log failed: %v", err)
	}
}

// ── Template resolution ───────────────────────────────────────────────────────

func (s *reportService) resolveStatementTemplate(ctx context.Context, inline json.RawMessage, id string) (core.StatementTemplate, error) {
	if len(inline) > 0 {
		var tpl core.StatementTemplate
		if err := json.Unmarshal(inline, &tpl); err != nil {
			return core.StatementTemplate{}, fmt.Errorf("invalid inline template: %w", err)
		}
		return tpl, nil
	}
	if id == "" || id == core.DefaultStatementTemplate().ID {
		return core.DefaultStatementTemplate(), nil
	}

	rec, err := s.storedTemplate(ctx, id, db.KindStatement)
	if err != nil {
		return core.StatementTemplate{}, err
	}
	var tpl core.StatementTemplate
	if err := json.Unmarshal(rec.Body, &tpl); err != nil {
		return core.StatementTemplate{}, fmt.Errorf("stored template %s is malformed: %w", id, err)
	}
	return tpl, nil
}

func (s *reportService) resolveAssociationTemplate(ctx context.Context, inline json.RawMessage, id string) (core.AssociationTemplate, error) {
	if len(inline) > 0 {
		var tpl core.AssociationTemplate
		if err := json.Unmarshal(inline, &tpl); err != nil {
			return core.AssociationTemplate{}, fmt.Errorf("invalid inline template: %w", err)
		}
		return tpl, nil
	}
	if id == "" || id == core.DefaultAssociationTemplate().ID {
		return core.DefaultAssociationTemplate(), nil
	}

	rec, err := s.storedTemplate(ctx, id, db.KindAssociation)
	if err != nil {
		return core.AssociationTemplate{}, err
	}
	var tpl core.AssociationTemplate
	if err := json.Unmarshal(rec.Body, &tpl); err != nil {
		return core.AssociationTemplate{}, fmt.Errorf("stored template %s is malformed: %w", id, err)
	}
	return tpl, nil
}

func (s *reportService) storedTemplate(ctx context.Context, id, wantKind string) (*db.TemplateRecord, error) {
	if s.store == nil {
		return nil, fmt.Errorf("template %s not found (no template store configured)", id)
	}
	rec, err := s.store.GetTemplate(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrTemplateNotFound) {
			return nil, fmt.Errorf("template %s not found", id)
		}
		return nil, fmt.Errorf("failed to load template %s: %w", id, err)
	}
	if rec.Kind != wantKind {
		return nil, fmt.Errorf("template %s is a %s template, want %s", id, rec.Kind, wantKind)
	}
	return rec, nil
}

// ── Template management ───────────────────────────────────────────────────────

func (s *reportService) ListTemplates(ctx context.Context) ([]TemplateInfo, error) {
	stmt := core.DefaultStatementTemplate()
	assoc := core.DefaultAssociationTemplate()
	out := []TemplateInfo{
		{ID: stmt.ID, Kind: db.KindStatement, Name: stmt.Name, BuiltIn: true},
		{ID: assoc.ID, Kind: db.KindAssociation, Name: assoc.Name, BuiltIn: true},
	}
	if s.store == nil {
		return out, nil
	}

	stored, err := s.store.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range stored {
		out = append(out, TemplateInfo{ID: rec.ID, Kind: rec.Kind, Name: rec.Name})
	}
	return out, nil
}

func (s *reportService) GetTemplate(ctx context.Context, id string) (*db.TemplateRecord, error) {
	if stmt := core.DefaultStatementTemplate(); id == stmt.ID {
		return builtinRecord(stmt.ID, db.KindStatement, stmt.Name, stmt)
	}
	if assoc := core.DefaultAssociationTemplate(); id == assoc.ID {
		return builtinRecord(assoc.ID, db.KindAssociation, assoc.Name, assoc)
	}
	if s.store == nil {
		return nil, db.ErrTemplateNotFound
	}
	return s.store.GetTemplate(ctx, id)
}

func (s *reportService) SaveTemplate(ctx context.Context, rec db.TemplateRecord) error {
	if s.store == nil {
		return ErrNoTemplateStore
	}
	if rec.ID == core.DefaultStatementTemplate().ID || rec.ID == core.DefaultAssociationTemplate().ID {
		return fmt.Errorf("template %s is built in and cannot be replaced", rec.ID)
	}

	// Fail early on bodies the generators could not use later.
	switch rec.Kind {
	case db.KindStatement:
		var tpl core.StatementTemplate
		if err := json.Unmarshal(rec.Body, &tpl); err != nil {
			return fmt.Errorf("template body is not a valid statement template: %w", err)
		}
	case db.KindAssociation:
		var tpl core.AssociationTemplate
		if err := json.Unmarshal(rec.Body, &tpl); err != nil {
			return fmt.Errorf("template body is not a valid association template: %w", err)
		}
	default:
		return fmt.Errorf("unknown template kind %q", rec.Kind)
	}

	return s.store.SaveTemplate(ctx, rec)
}

func builtinRecord(id, kind, name string, tpl any) (*db.TemplateRecord, error) {
	body, err := json.Marshal(tpl)
	if err != nil {
		return nil, fmt.Errorf("failed to encode built-in template: %w", err)
	}
	return &db.TemplateRecord{ID: id, Kind: kind, Name: name, Body: body}, nil
}

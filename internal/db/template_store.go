package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Template kinds.
const (
	KindStatement   = "statement"
	KindAssociation = "association"
)

// ErrTemplateNotFound is returned when no template exists for an ID.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateRecord is one stored report template. Body is the JSON-encoded
// template config (core.StatementTemplate or core.AssociationTemplate,
// depending on Kind); the store does not interpret it.
type TemplateRecord struct {
	ID        string
	Kind      string
	Name      string
	Body      []byte
	UpdatedAt time.Time
}

// ReportLogEntry records one successful report generation.
type ReportLogEntry struct {
	Kind        string
	FileName    string
	FileSize    int64
	TeacherID   string
	GeneratedBy string
}

// Store persists report templates and the generated-reports audit log.
type Store interface {
	// GetTemplate returns the template with the given ID, or ErrTemplateNotFound.
	GetTemplate(ctx context.Context, id string) (*TemplateRecord, error)

	// ListTemplates returns all stored templates ordered by ID.
	ListTemplates(ctx context.Context) ([]TemplateRecord, error)

	// SaveTemplate inserts or replaces a template by ID.
	SaveTemplate(ctx context.Context, rec TemplateRecord) error

	// RecordReport appends one row to the generated-reports audit log.
	RecordReport(ctx context.Context, entry ReportLogEntry) error
}

type store struct {
	pool *pgxpool.Pool
}

// NewStore constructs a Store backed by the given pool.
func NewStore(pool *pgxpool.Pool) Store {
	return &store{pool: pool}
}

func (s *store) GetTemplate(ctx context.Context, id string) (*TemplateRecord, error) {
	var rec TemplateRecord
	err := s.pool.QueryRow(ctx,
		"SELECT id, kind, name, body, updated_at FROM report_templates WHERE id = $1", id,
	).Scan(&rec.ID, &rec.Kind, &rec.Name, &rec.Body, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to load template %s: %w", id, err)
	}
	return &rec, nil
}

func (s *store) ListTemplates(ctx context.Context) ([]TemplateRecord, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, kind, name, body, updated_at FROM report_templates ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var out []TemplateRecord
	for rows.Next() {
		var rec TemplateRecord
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.Name, &rec.Body, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *store) SaveTemplate(ctx context.Context, rec TemplateRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("template ID is required")
	}
	if rec.Kind != KindStatement && rec.Kind != KindAssociation {
		return fmt.Errorf("unknown template kind %q", rec.Kind)
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO report_templates (id, kind, name, body, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE
		SET kind = EXCLUDED.kind, name = EXCLUDED.name,
		    body = EXCLUDED.body, updated_at = now()`,
		rec.ID, rec.Kind, rec.Name, rec.Body)
	if err != nil {
		return fmt.Errorf("failed to save template %s: %w", rec.ID, err)
	}
	return nil
}

func (s *store) RecordReport(ctx context.Context, entry ReportLogEntry) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO generated_reports (kind, file_name, file_size, teacher_id, generated_by)
		VALUES ($1, $2, $3, $4, $5)`,
		entry.Kind, entry.FileName, entry.FileSize, entry.TeacherID, entry.GeneratedBy)
	if err != nil {
		return fmt.Errorf("failed to record generated report: %w", err)
	}
	return nil
}

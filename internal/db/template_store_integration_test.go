package db_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"association-reports/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	_ = godotenv.Load("../../.env")

	// Use a dedicated TEST database to avoid touching the live one.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS report_templates (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			name TEXT NOT NULL,
			body JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS generated_reports (
			id BIGSERIAL PRIMARY KEY,
			kind TEXT NOT NULL,
			file_name TEXT NOT NULL,
			file_size BIGINT NOT NULL,
			teacher_id TEXT,
			generated_by TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		TRUNCATE TABLE report_templates, generated_reports;
	`)
	if err != nil {
		t.Fatalf("Failed to prepare test tables: %v", err)
	}
	return pool
}

func TestTemplateStore_SaveGetList(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	store := db.NewStore(pool)
	ctx := context.Background()

	rec := db.TemplateRecord{
		ID:   "quarterly_exec",
		Kind: db.KindAssociation,
		Name: "Quarterly Executive Summary",
		Body: []byte(`{"theme_name": "executive"}`),
	}
	if err := store.SaveTemplate(ctx, rec); err != nil {
		t.Fatalf("SaveTemplate: %v", err)
	}

	got, err := store.GetTemplate(ctx, "quarterly_exec")
	if err != nil {
		t.Fatalf("GetTemplate: %v", err)
	}
	if got.Kind != db.KindAssociation || got.Name != rec.Name {
		t.Errorf("got %+v", got)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("updated_at not populated")
	}

	// Upsert replaces in place.
	rec.Name = "Quarterly Executive Summary v2"
	if err := store.SaveTemplate(ctx, rec); err != nil {
		t.Fatalf("SaveTemplate (update): %v", err)
	}
	list, err := store.ListTemplates(ctx)
	if err != nil {
		t.Fatalf("ListTemplates: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Quarterly Executive Summary v2" {
		t.Errorf("list = %+v", list)
	}
}

func TestTemplateStore_NotFound(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	store := db.NewStore(pool)
	_, err := store.GetTemplate(context.Background(), "missing")
	if !errors.Is(err, db.ErrTemplateNotFound) {
		t.Errorf("want ErrTemplateNotFound, got %v", err)
	}
}

func TestTemplateStore_SaveValidation(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	store := db.NewStore(pool)
	ctx := context.Background()

	if err := store.SaveTemplate(ctx, db.TemplateRecord{Kind: db.KindStatement, Body: []byte(`{}`)}); err == nil {
		t.Error("missing ID should be rejected")
	}
	if err := store.SaveTemplate(ctx, db.TemplateRecord{ID: "x", Kind: "bogus", Body: []byte(`{}`)}); err == nil {
		t.Error("unknown kind should be rejected")
	}
}

func TestStore_RecordReport(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	store := db.NewStore(pool)
	ctx := context.Background()

	err := store.RecordReport(ctx, db.ReportLogEntry{
		Kind:        db.KindStatement,
		FileName:    "teacher_statement_EMP-1_2026-04-02.pdf",
		FileSize:    52100,
		TeacherID:   "EMP-1",
		GeneratedBy: "admin@association.org",
	})
	if err != nil {
		t.Fatalf("RecordReport: %v", err)
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM generated_reports WHERE teacher_id = 'EMP-1'").Scan(&count); err != nil {
		t.Fatalf("count query: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

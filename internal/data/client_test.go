package data_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"association-reports/internal/data"
)

func TestClient_TeacherStatementData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/reports/teacher/data" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("teacher_id") != "EMP-1" || q.Get("start_date") != "2026-01-01" {
			t.Errorf("unexpected query: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"teacher": {"full_name": "Akosua Mensah", "employee_id": "EMP-1"},
			"balance": {"savings_balance": "1200.50"},
			"generated_at": "2026-04-02T09:00:00Z"
		}`))
	}))
	defer srv.Close()

	client := data.NewClient(srv.URL)
	got, err := client.TeacherStatementData(context.Background(), data.StatementFilters{
		TeacherID: "EMP-1",
		StartDate: "2026-01-01",
	})
	if err != nil {
		t.Fatalf("TeacherStatementData: %v", err)
	}
	if got.Teacher.EmployeeID != "EMP-1" {
		t.Errorf("employee ID = %q", got.Teacher.EmployeeID)
	}
	if got.Balance.SavingsBalance.StringFixed(2) != "1200.50" {
		t.Errorf("balance = %s", got.Balance.SavingsBalance)
	}
}

func TestClient_TeacherStatementData_RequiresID(t *testing.T) {
	client := data.NewClient("http://localhost:0")
	if _, err := client.TeacherStatementData(context.Background(), data.StatementFilters{}); err == nil {
		t.Error("expected error for missing teacher ID")
	}
}

func TestClient_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no data", http.StatusNotFound)
	}))
	defer srv.Close()

	client := data.NewClient(srv.URL)
	_, err := client.TeacherStatementData(context.Background(), data.StatementFilters{TeacherID: "EMP-404"})
	if !errors.Is(err, data.ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := data.NewClient(srv.URL)
	_, err := client.AssociationSummaryData(context.Background(), data.SummaryFilters{Quarter: 1, Year: 2026})
	if err == nil || errors.Is(err, data.ErrNotFound) {
		t.Errorf("want a non-NotFound error for HTTP 500, got %v", err)
	}
}

func TestClient_SummaryQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("quarter") != "2" || q.Get("year") != "2026" {
			t.Errorf("unexpected query: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total_teachers": 5, "generated_at": "2026-07-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	client := data.NewClient(srv.URL)
	got, err := client.AssociationSummaryData(context.Background(), data.SummaryFilters{Quarter: 2, Year: 2026})
	if err != nil {
		t.Fatalf("AssociationSummaryData: %v", err)
	}
	if got.TotalTeachers != 5 {
		t.Errorf("total teachers = %d", got.TotalTeachers)
	}
}

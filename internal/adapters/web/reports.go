package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"association-reports/internal/app"
	"association-reports/internal/data"
)

type teacherReportRequest struct {
	TeacherID  string          `json:"teacher_id"`
	StartDate  string          `json:"start_date,omitempty"`
	EndDate    string          `json:"end_date,omitempty"`
	TemplateID string          `json:"template_id,omitempty"`
	Template   json.RawMessage `json:"template,omitempty"`
}

type associationReportRequest struct {
	Quarter    int             `json:"quarter,omitempty"`
	Year       int             `json:"year,omitempty"`
	StartDate  string          `json:"start_date,omitempty"`
	EndDate    string          `json:"end_date,omitempty"`
	TemplateID string          `json:"template_id,omitempty"`
	Template   json.RawMessage `json:"template,omitempty"`
}

type bulkReportRequest struct {
	TeacherIDs []string `json:"teacher_ids"`
	StartDate  string   `json:"start_date,omitempty"`
	EndDate    string   `json:"end_date,omitempty"`
	TemplateID string   `json:"template_id,omitempty"`
}

// generateTeacherStatement handles POST /api/reports/teacher.
func (h *Handler) generateTeacherStatement(w http.ResponseWriter, r *http.Request) {
	var req teacherReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "invalid JSON body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	if req.TeacherID == "" {
		writeError(w, r, "teacher_id is required", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result := h.svc.GenerateTeacherStatement(r.Context(), app.GenerateStatementRequest{
		Filters: data.StatementFilters{
			TeacherID: req.TeacherID,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		},
		TemplateID: req.TemplateID,
		Template:   req.Template,
	})
	h.respondWithReport(w, r, result)
}

// generateAssociationSummary handles POST /api/reports/association.
func (h *Handler) generateAssociationSummary(w http.ResponseWriter, r *http.Request) {
	var req associationReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "invalid JSON body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result := h.svc.GenerateAssociationSummary(r.Context(), app.GenerateSummaryRequest{
		Filters: data.SummaryFilters{
			Quarter:   req.Quarter,
			Year:      req.Year,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		},
		TemplateID: req.TemplateID,
		Template:   req.Template,
	})
	h.respondWithReport(w, r, result)
}

// generateBulkStatements handles POST /api/reports/bulk.
func (h *Handler) generateBulkStatements(w http.ResponseWriter, r *http.Request) {
	var req bulkReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "invalid JSON body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	if len(req.TeacherIDs) == 0 {
		writeError(w, r, "teacher_ids is required", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result := h.svc.GenerateBulkStatements(r.Context(), app.BulkStatementsRequest{
		TeacherIDs: req.TeacherIDs,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TemplateID: req.TemplateID,
	})
	writeJSON(w, result)
}

// respondWithReport streams the PDF as an attachment, or maps a failed result
// to a JSON error response.
func (h *Handler) respondWithReport(w http.ResponseWriter, r *http.Request, result *app.GenerateResult) {
	if !result.Success {
		writeError(w, r, result.Error, result.Code, statusForCode(result.Code))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	_, _ = w.Write(result.Data)
}

func statusForCode(code string) int {
	switch code {
	case app.CodeNotFound:
		return http.StatusNotFound
	case app.CodeBadTemplate:
		return http.StatusBadRequest
	case app.CodeFetchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

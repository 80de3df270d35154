package web

import (
	"net/http"

	"association-reports/internal/app"

	"github.com/go-chi/chi/v5"
)

// maxRequestBody caps JSON request bodies. Bulk requests are the largest
// legitimate payload (a list of teacher IDs) and fit comfortably under 1 MB.
const maxRequestBody = 1 << 20

// Handler holds the ReportService and the chi router.
type Handler struct {
	svc    app.ReportService
	router chi.Router
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ReportService, allowedOrigins string) http.Handler {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(maxRequestBody))

	r.Get("/api/health", h.health)

	// Report generation. Successful responses stream the PDF; failures are
	// JSON error bodies.
	r.Post("/api/reports/teacher", h.generateTeacherStatement)
	r.Post("/api/reports/association", h.generateAssociationSummary)
	r.Post("/api/reports/bulk", h.generateBulkStatements)

	// Template management.
	r.Get("/api/templates", h.listTemplates)
	r.Get("/api/templates/{id}", h.getTemplate)
	r.Put("/api/templates/{id}", h.saveTemplate)

	h.router = r
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

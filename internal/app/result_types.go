package app

// Error codes carried on failed results.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeFetchFailed      = "FETCH_FAILED"
	CodeBadTemplate      = "BAD_TEMPLATE"
	CodeGenerationFailed = "GENERATION_FAILED"
)

// GenerateResult is the value-typed outcome of one report generation.
// Errors never cross the service boundary as panics or raw error values;
// callers branch on Success and surface Error/Code.
type GenerateResult struct {
	Success  bool   `json:"success"`
	FileName string `json:"file_name,omitempty"`
	FileSize int64  `json:"file_size,omitempty"`
	Error    string `json:"error,omitempty"`
	Code     string `json:"code,omitempty"`

	// Data holds the PDF bytes on success. It is delivered as a download,
	// never embedded in a JSON body.
	Data []byte `json:"-"`
}

func failure(code, message string) *GenerateResult {
	return &GenerateResult{Success: false, Code: code, Error: message}
}

// BulkItemResult is the per-teacher outcome of a bulk run. Every requested ID
// gets exactly one item, success or not.
type BulkItemResult struct {
	TeacherID string `json:"teacher_id"`
	Success   bool   `json:"success"`
	FileName  string `json:"file_name,omitempty"`
	FileSize  int64  `json:"file_size,omitempty"`
	Error     string `json:"error,omitempty"`
}

// BulkResult is the job descriptor for a bulk statement run.
type BulkResult struct {
	Requested        int              `json:"requested"`
	Succeeded        int              `json:"succeeded"`
	Failed           int              `json:"failed"`
	EstimatedSeconds int              `json:"estimated_seconds"`
	Items            []BulkItemResult `json:"items"`
}

// TemplateInfo is one entry in a template listing. Built-in defaults are
// always present; stored templates follow when a database is configured.
type TemplateInfo struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	BuiltIn bool   `json:"built_in"`
}

package core

// ── Section keys ──────────────────────────────────────────────────────────────

// Teacher statement sections, in the order the builder emits them.
const (
	SectionPersonalInfo       = "personal_info"
	SectionAccountSummary     = "account_summary"
	SectionTransactionHistory = "transaction_history"
	SectionInterestBreakdown  = "interest_breakdown"
	SectionPaymentMethods     = "payment_methods"
)

// Association summary sections, in the order the builder emits them.
const (
	SectionExecutiveSummary    = "executive_summary"
	SectionFinancialOverview   = "financial_overview"
	SectionTeacherStatistics   = "teacher_statistics"
	SectionTransactionAnalysis = "transaction_analysis"
	SectionInterestPayments    = "interest_payments"
	SectionManagementUnits     = "management_units"
	SectionTopContributors     = "top_contributors"
	SectionGrowthMetrics       = "growth_metrics"
)

// ── Template config ───────────────────────────────────────────────────────────

// HeaderConfig controls the document banner.
type HeaderConfig struct {
	Title       string `json:"title"`
	ShowLogo    bool   `json:"show_logo"`
	ShowContact bool   `json:"show_contact"`
	ShowPeriod  bool   `json:"show_period"`
	LogoURL     string `json:"logo_url,omitempty"`
	Contact     string `json:"contact,omitempty"`
}

// Styling carries template colour/font overrides. ShowCharts and ShowGraphs
// are accepted and preserved but not consumed by any rendering path; they are
// forward-compatible no-ops.
type Styling struct {
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
	FontFamily     string `json:"font_family,omitempty"`
	ShowCharts     bool   `json:"show_charts"`
	ShowGraphs     bool   `json:"show_graphs"`
}

// StatementTemplate configures a teacher statement: which sections render and
// how the document is styled. A nil Sections map means every section is
// enabled; a key absent from a non-nil map means that section is disabled.
type StatementTemplate struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	ThemeName string          `json:"theme_name"`
	Header    HeaderConfig    `json:"header"`
	Sections  map[string]bool `json:"sections"`
	Styling   Styling         `json:"styling"`
}

// SectionEnabled reports whether the named section should render.
func (t StatementTemplate) SectionEnabled(key string) bool {
	if t.Sections == nil {
		return true
	}
	return t.Sections[key]
}

// AssociationTemplate configures an association summary.
type AssociationTemplate struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	ThemeName string          `json:"theme_name"`
	Header    HeaderConfig    `json:"header"`
	Sections  map[string]bool `json:"sections"`
	Styling   Styling         `json:"styling"`
}

// SectionEnabled reports whether the named section should render.
func (t AssociationTemplate) SectionEnabled(key string) bool {
	if t.Sections == nil {
		return true
	}
	return t.Sections[key]
}

// ── Built-in defaults ─────────────────────────────────────────────────────────

// DefaultStatementTemplate returns the built-in teacher statement template:
// classic_blue theme, all sections enabled, period shown in the header.
func DefaultStatementTemplate() StatementTemplate {
	return StatementTemplate{
		ID:        "statement_default",
		Name:      "Standard Teacher Statement",
		ThemeName: DefaultThemeName,
		Header: HeaderConfig{
			Title:      "Teacher Savings Statement",
			ShowPeriod: true,
		},
		Sections: map[string]bool{
			SectionPersonalInfo:       true,
			SectionAccountSummary:     true,
			SectionTransactionHistory: true,
			SectionInterestBreakdown:  true,
			SectionPaymentMethods:     true,
		},
	}
}

// DefaultAssociationTemplate returns the built-in association summary
// template: classic_blue theme, all sections enabled.
func DefaultAssociationTemplate() AssociationTemplate {
	return AssociationTemplate{
		ID:        "association_default",
		Name:      "Standard Association Summary",
		ThemeName: DefaultThemeName,
		Header: HeaderConfig{
			Title:      "Association Financial Summary",
			ShowPeriod: true,
		},
		Sections: map[string]bool{
			SectionExecutiveSummary:    true,
			SectionFinancialOverview:   true,
			SectionTeacherStatistics:   true,
			SectionTransactionAnalysis: true,
			SectionInterestPayments:    true,
			SectionManagementUnits:     true,
			SectionTopContributors:     true,
			SectionGrowthMetrics:       true,
		},
	}
}

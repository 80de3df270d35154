package core

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TypeBreakdown is the per-type slice of transaction activity for a period.
type TypeBreakdown struct {
	Type   string          `json:"type"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// UnitRollup aggregates savings activity for one management unit.
type UnitRollup struct {
	Name          string          `json:"name"`
	Teachers      int             `json:"teachers"`
	Contributions decimal.Decimal `json:"contributions"`
	Balance       decimal.Decimal `json:"balance"`
}

// ContributorRank is one entry in the top-contributor ranking.
type ContributorRank struct {
	Name       string          `json:"name"`
	EmployeeID string          `json:"employee_id"`
	Unit       string          `json:"unit,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
}

// GrowthMetrics holds period-over-period deltas, in percent.
type GrowthMetrics struct {
	TeacherGrowth      decimal.Decimal `json:"teacher_growth"`
	ContributionGrowth decimal.Decimal `json:"contribution_growth"`
	BalanceGrowth      decimal.Decimal `json:"balance_growth"`
}

// AssociationSummaryData is everything an association summary renders.
// The core does not validate referential integrity between units, rankings
// and teachers — it reports the caller's aggregates as given.
type AssociationSummaryData struct {
	TotalTeachers      int             `json:"total_teachers"`
	ActiveTeachers     int             `json:"active_teachers"`
	SystemBalance      decimal.Decimal `json:"system_balance"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalInterest      decimal.Decimal `json:"total_interest"`

	Period  StatementPeriod `json:"period"`
	Quarter int             `json:"quarter,omitempty"` // 1–4, 0 when the period is not a quarter
	Year    int             `json:"year,omitempty"`

	TransactionsByType []TypeBreakdown   `json:"transactions_by_type"`
	Units              []UnitRollup      `json:"units"`
	InterestHistory    []InterestPayment `json:"interest_history"`
	TopContributors    []ContributorRank `json:"top_contributors"`
	Growth             GrowthMetrics     `json:"growth"`

	GeneratedAt time.Time `json:"generated_at"`
	GeneratedBy string    `json:"generated_by"`
}

// Validate rejects summary data missing the fields every section depends on.
func (d *AssociationSummaryData) Validate() error {
	if d.GeneratedAt.IsZero() {
		return &DataShapeError{Msg: "generated_at timestamp is required"}
	}
	if d.Quarter < 0 || d.Quarter > 4 {
		return &DataShapeError{Msg: fmt.Sprintf("quarter %d out of range", d.Quarter)}
	}
	return nil
}

// SummaryFileName derives the download filename for an association summary:
// association_summary_Q{n}_{year}.pdf when a quarter is set, otherwise
// association_summary_{date}.pdf dated from GeneratedAt.
func SummaryFileName(d AssociationSummaryData) string {
	if d.Quarter >= 1 && d.Quarter <= 4 && d.Year > 0 {
		return fmt.Sprintf("association_summary_Q%d_%d.pdf", d.Quarter, d.Year)
	}
	return "association_summary_" + d.GeneratedAt.Format("2006-01-02") + ".pdf"
}

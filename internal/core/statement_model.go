package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Transactions ──────────────────────────────────────────────────────────────

// Transaction types.
const (
	TxMobileMoney        = "mobile-money"
	TxControllerTransfer = "controller-transfer"
	TxInterest           = "interest"
	TxDeposit            = "deposit"
)

// Transaction statuses. Only completed transactions contribute to balances.
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
	StatusFailed    = "failed"
)

// Transaction is a single savings movement on a teacher's account.
// RunningBalance is the cumulative completed-amount total at this point in
// the date-sorted sequence; it is computed by ApplyRunningBalances, not
// supplied by the caller.
type Transaction struct {
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Reference     string          `json:"reference,omitempty"`

	RunningBalance decimal.Decimal `json:"running_balance"`
}

// ── Teacher statement data ────────────────────────────────────────────────────

// TeacherRecord identifies the teacher a statement is for.
type TeacherRecord struct {
	FullName       string `json:"full_name"`
	EmployeeID     string `json:"employee_id"`
	ManagementUnit string `json:"management_unit"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// BalanceSnapshot holds the account position at the end of the statement period.
type BalanceSnapshot struct {
	SavingsBalance     decimal.Decimal `json:"savings_balance"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalInterest      decimal.Decimal `json:"total_interest"`
}

// InterestPayment is one interest credit within a statement or summary period.
type InterestPayment struct {
	Period   string          `json:"period"`
	Rate     decimal.Decimal `json:"rate"` // annual percentage, e.g. 4.25
	Amount   decimal.Decimal `json:"amount"`
	PaidDate time.Time       `json:"paid_date"`
}

// InterestSummary aggregates interest activity for the statement period.
type InterestSummary struct {
	TotalEarned decimal.Decimal   `json:"total_earned"`
	Payments    []InterestPayment `json:"payments"`
}

// StatementPeriod bounds a report by date, inclusive on both ends.
type StatementPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TeacherStatementData is everything a teacher statement renders. It is a
// plain value assembled by the caller; the core performs no fetching.
// GeneratedAt is part of the data so that identical inputs always produce
// identical documents.
type TeacherStatementData struct {
	Teacher      TeacherRecord   `json:"teacher"`
	Balance      BalanceSnapshot `json:"balance"`
	Transactions []Transaction   `json:"transactions"`
	Interest     InterestSummary `json:"interest"`
	Period       StatementPeriod `json:"period"`
	GeneratedAt  time.Time       `json:"generated_at"`
	GeneratedBy  string          `json:"generated_by"`
}

// Validate rejects statement data missing the fields every section depends on.
func (d *TeacherStatementData) Validate() error {
	if d.Teacher.FullName == "" {
		return &DataShapeError{Msg: "teacher full name is required"}
	}
	if d.Teacher.EmployeeID == "" {
		return &DataShapeError{Msg: "teacher employee ID is required"}
	}
	if d.GeneratedAt.IsZero() {
		return &DataShapeError{Msg: "generated_at timestamp is required"}
	}
	return nil
}

// StatementFileName derives the download filename for a teacher statement:
// teacher_statement_{employeeID}_{date}.pdf, dated from GeneratedAt.
func StatementFileName(d TeacherStatementData) string {
	return "teacher_statement_" + d.Teacher.EmployeeID + "_" + d.GeneratedAt.Format("2006-01-02") + ".pdf"
}

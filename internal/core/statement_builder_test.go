package core

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func sampleStatementData() TeacherStatementData {
	return TeacherStatementData{
		Teacher: TeacherRecord{
			FullName:       "Akosua Mensah",
			EmployeeID:     "EMP-2041",
			ManagementUnit: "Kumasi Metro",
			Email:          "akosua.mensah@example.com",
		},
		Balance: BalanceSnapshot{
			SavingsBalance:     decimal.NewFromInt(4250),
			TotalContributions: decimal.NewFromInt(4000),
			TotalInterest:      decimal.NewFromInt(250),
		},
		Transactions: []Transaction{
			{Type: TxMobileMoney, Amount: decimal.NewFromInt(200), Description: "March savings", Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), Status: StatusCompleted},
			{Type: TxControllerTransfer, Amount: decimal.NewFromInt(350), Description: "Salary deduction", Date: time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC), Status: StatusCompleted},
			{Type: TxInterest, Amount: decimal.NewFromInt(25), Description: "Quarterly interest", Date: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), Status: StatusPending},
		},
		Interest: InterestSummary{
			TotalEarned: decimal.NewFromInt(250),
			Payments: []InterestPayment{
				{Period: "Q1 2026", Rate: decimal.NewFromFloat(4.25), Amount: decimal.NewFromInt(25), PaidDate: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)},
			},
		},
		Period: StatementPeriod{
			Start: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		GeneratedAt: time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC),
		GeneratedBy: "admin@association.org",
	}
}

func TestBuildTeacherStatement_Deterministic(t *testing.T) {
	data := sampleStatementData()
	tpl := DefaultStatementTemplate()

	first, err := BuildTeacherStatement(data, tpl)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := BuildTeacherStatement(data, tpl)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical inputs produced different documents")
	}
}

func TestBuildTeacherStatement_SectionGating(t *testing.T) {
	tests := []struct {
		key     string
		heading string
	}{
		{SectionPersonalInfo, "Personal Information"},
		{SectionAccountSummary, "Account Summary"},
		{SectionTransactionHistory, "Transaction History"},
		{SectionInterestBreakdown, "Interest Breakdown"},
		{SectionPaymentMethods, "Payment Methods"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			tpl := DefaultStatementTemplate()
			tpl.Sections = map[string]bool{tt.key: true}

			g, err := buildStatement(sampleStatementData(), tpl)
			if err != nil {
				t.Fatalf("buildStatement: %v", err)
			}
			headings := g.Headings()
			if len(headings) != 1 || headings[0] != tt.heading {
				t.Errorf("headings = %v, want exactly [%q]", headings, tt.heading)
			}
		})
	}
}

func TestBuildTeacherStatement_AllSectionsDisabled(t *testing.T) {
	tpl := DefaultStatementTemplate()
	tpl.Sections = map[string]bool{}

	g, err := buildStatement(sampleStatementData(), tpl)
	if err != nil {
		t.Fatalf("buildStatement: %v", err)
	}
	if headings := g.Headings(); len(headings) != 0 {
		t.Errorf("no sections enabled, got headings %v", headings)
	}
}

func TestBuildTeacherStatement_SectionOrder(t *testing.T) {
	g, err := buildStatement(sampleStatementData(), DefaultStatementTemplate())
	if err != nil {
		t.Fatalf("buildStatement: %v", err)
	}
	want := []string{
		"Personal Information",
		"Account Summary",
		"Transaction History",
		"Interest Breakdown",
		"Payment Methods",
	}
	got := g.Headings()
	if len(got) != len(want) {
		t.Fatalf("headings = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("heading %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildTeacherStatement_EmptySectionsRenderFallbacks(t *testing.T) {
	data := sampleStatementData()
	data.Transactions = nil
	data.Interest = InterestSummary{}

	g, err := buildStatement(data, DefaultStatementTemplate())
	if err != nil {
		t.Fatalf("buildStatement: %v", err)
	}
	// Section headings still render even when their data is empty.
	if got := len(g.Headings()); got != 5 {
		t.Errorf("want all 5 section headings with empty data, got %d", got)
	}
}

func TestBuildTeacherStatement_ZeroContributions(t *testing.T) {
	data := sampleStatementData()
	data.Balance.TotalContributions = decimal.Zero

	if _, err := BuildTeacherStatement(data, DefaultStatementTemplate()); err != nil {
		t.Fatalf("zero contributions must not fail generation: %v", err)
	}
}

func TestBuildTeacherStatement_ValidatesData(t *testing.T) {
	data := sampleStatementData()
	data.Teacher.EmployeeID = ""

	_, err := BuildTeacherStatement(data, DefaultStatementTemplate())
	var shapeErr *DataShapeError
	if !errors.As(err, &shapeErr) {
		t.Errorf("want DataShapeError for missing employee ID, got %v", err)
	}
}

func TestStatementFileName(t *testing.T) {
	data := sampleStatementData()
	if got, want := StatementFileName(data), "teacher_statement_EMP-2041_2026-04-02.pdf"; got != want {
		t.Errorf("StatementFileName = %q, want %q", got, want)
	}
}

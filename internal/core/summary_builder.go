package core

import (
	"fmt"
	"strconv"
)

type summaryBuilder struct {
	gen  *Generator
	data AssociationSummaryData
	tpl  AssociationTemplate
}

// BuildAssociationSummary renders an association financial summary as PDF
// bytes. Like BuildTeacherStatement it is a pure function of its inputs, with
// a fixed section order gated by the template's flags: executive summary,
// financial overview, teacher statistics, transaction analysis, interest
// payments, management units, top contributors, growth metrics.
func BuildAssociationSummary(data AssociationSummaryData, tpl AssociationTemplate) ([]byte, error) {
	g, err := buildSummary(data, tpl)
	if err != nil {
		return nil, err
	}
	return g.Bytes()
}

func buildSummary(data AssociationSummaryData, tpl AssociationTemplate) (*Generator, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	b := &summaryBuilder{
		gen:  NewGenerator(nil, tpl.ThemeName),
		data: data,
		tpl:  tpl,
	}
	b.gen.SetCreationDate(data.GeneratedAt)

	b.header()
	sections := []builderSection{
		{SectionExecutiveSummary, b.executiveSummary},
		{SectionFinancialOverview, b.financialOverview},
		{SectionTeacherStatistics, b.teacherStatistics},
		{SectionTransactionAnalysis, b.transactionAnalysis},
		{SectionInterestPayments, b.interestPayments},
		{SectionManagementUnits, b.managementUnits},
		{SectionTopContributors, b.topContributors},
		{SectionGrowthMetrics, b.growthMetrics},
	}
	for _, s := range sections {
		if !b.tpl.SectionEnabled(s.key) {
			continue
		}
		if err := s.render(); err != nil {
			return nil, err
		}
	}
	b.footer()

	return b.gen, nil
}

func (b *summaryBuilder) header() {
	title := b.tpl.Header.Title
	if title == "" {
		title = "Association Financial Summary"
	}
	subtitle := ""
	if b.tpl.Header.ShowPeriod {
		if b.data.Quarter >= 1 && b.data.Quarter <= 4 && b.data.Year > 0 {
			subtitle = fmt.Sprintf("Q%d %d", b.data.Quarter, b.data.Year)
		} else {
			subtitle = FormatPeriod(b.data.Period)
		}
	}
	logo := ""
	if b.tpl.Header.ShowLogo {
		logo = b.tpl.Header.LogoURL
	}
	b.gen.AddHeader(title, subtitle, logo)

	if b.tpl.Header.ShowContact && b.tpl.Header.Contact != "" {
		secondary := b.gen.Theme().Secondary
		b.gen.AddText(b.tpl.Header.Contact, TextOptions{
			FontSize:     9,
			Color:        &secondary,
			MarginBottom: b.gen.Theme().SpacingSmall,
		})
	}
}

func (b *summaryBuilder) executiveSummary() error {
	b.gen.AddTitle("Executive Summary", 2)
	text := fmt.Sprintf(
		"The association closed the period with a system balance of %s across %d registered teachers "+
			"(%d active). Member contributions totalled %s and interest of %s was credited to savings accounts.",
		FormatAmount(b.data.SystemBalance),
		b.data.TotalTeachers,
		b.data.ActiveTeachers,
		FormatAmount(b.data.TotalContributions),
		FormatAmount(b.data.TotalInterest),
	)
	b.gen.AddText(text, TextOptions{MarginBottom: b.gen.Theme().SpacingMedium})
	return nil
}

func (b *summaryBuilder) financialOverview() error {
	b.gen.AddTitle("Financial Overview", 2)
	content := b.gen.Geometry().ContentWidth()
	err := b.gen.AddTable(TableSpec{
		Headers:      []string{"Item", "Amount"},
		ColumnWidths: []float64{content * 0.6, content * 0.4},
		Rows: [][]string{
			{"System Balance", FormatAmount(b.data.SystemBalance)},
			{"Total Contributions", FormatAmount(b.data.TotalContributions)},
			{"Total Interest Paid", FormatAmount(b.data.TotalInterest)},
		},
	})
	if err != nil {
		return err
	}
	b.gen.AddSpacer(b.gen.Theme().SpacingMedium)
	return nil
}

func (b *summaryBuilder) teacherStatistics() error {
	b.gen.AddTitle("Teacher Statistics", 2)
	b.gen.AddText("Registered teachers: "+strconv.Itoa(b.data.TotalTeachers), TextOptions{})
	b.gen.AddText("Active savers: "+strconv.Itoa(b.data.ActiveTeachers), TextOptions{})
	inactive := b.data.TotalTeachers - b.data.ActiveTeachers
	if inactive < 0 {
		inactive = 0
	}
	b.gen.AddText("Inactive accounts: "+strconv.Itoa(inactive), TextOptions{
		MarginBottom: b.gen.Theme().SpacingMedium,
	})
	return nil
}

func (b *summaryBuilder) transactionAnalysis() error {
	b.gen.AddTitle("Transaction Analysis", 2)
	if len(b.data.TransactionsByType) == 0 {
		b.noData("No transaction activity recorded for this period.")
		return nil
	}

	rows := make([][]string, 0, len(b.data.TransactionsByType))
	for _, t := range b.data.TransactionsByType {
		rows = append(rows, []string{
			txTypeLabel(t.Type),
			strconv.Itoa(t.Count),
			FormatAmount(t.Amount),
			FormatPercent(t.Amount, b.data.TotalContributions),
		})
	}
	err := b.gen.AddTable(TableSpec{
		Headers: []string{"Type", "Count", "Amount", "% of Contributions"},
		Rows:    rows,
		Striped: true,
	})
	if err != nil {
		return err
	}
	b.gen.AddSpacer(b.gen.Theme().SpacingMedium)
	return nil
}

func (b *summaryBuilder) interestPayments() error {
	b.gen.AddTitle("Interest Payments", 2)
	if len(b.data.InterestHistory) == 0 {
		b.noData("No interest payments recorded for this period.")
		return nil
	}

	rows := make([][]string, 0, len(b.data.InterestHistory))
	for _, p := range b.data.InterestHistory {
		rows = append(rows, []string{
			p.Period,
			p.Rate.StringFixed(2) + "%",
			FormatDate(p.PaidDate),
			FormatAmount(p.Amount),
		})
	}
	err := b.gen.AddTable(TableSpec{
		Headers: []string{"Period", "Rate", "Paid Date", "Amount"},
		Rows:    rows,
		Striped: true,
	})
	if err != nil {
		return err
	}
	b.gen.AddSpacer(b.gen.Theme().SpacingMedium)
	return nil
}

func (b *summaryBuilder) managementUnits() error {
	b.gen.AddTitle("Management Units", 2)
	if len(b.data.Units) == 0 {
		b.noData("No management unit data available.")
		return nil
	}

	rows := make([][]string, 0, len(b.data.Units))
	for _, u := range b.data.Units {
		rows = append(rows, []string{
			u.Name,
			strconv.Itoa(u.Teachers),
			FormatAmount(u.Contributions),
			FormatAmount(u.Balance),
		})
	}
	err := b.gen.AddTable(TableSpec{
		Headers: []string{"Unit", "Teachers", "Contributions", "Balance"},
		Rows:    rows,
		Striped: true,
	})
	if err != nil {
		return err
	}
	b.gen.AddSpacer(b.gen.Theme().SpacingMedium)
	return nil
}

func (b *summaryBuilder) topContributors() error {
	b.gen.AddTitle("Top Contributors", 2)
	if len(b.data.TopContributors) == 0 {
		b.noData("No contributor ranking available for this period.")
		return nil
	}

	rows := make([][]string, 0, len(b.data.TopContributors))
	for i, c := range b.data.TopContributors {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			c.Name,
			c.EmployeeID,
			FormatAmount(c.Amount),
		})
	}
	err := b.gen.AddTable(TableSpec{
		Headers: []string{"Rank", "Name", "Employee ID", "Contributions"},
		Rows:    rows,
		Striped: true,
	})
	if err != nil {
		return err
	}
	b.gen.AddSpacer(b.gen.Theme().SpacingMedium)
	return nil
}

func (b *summaryBuilder) growthMetrics() error {
	b.gen.AddTitle("Growth Metrics", 2)
	b.gen.AddText("Teacher growth: "+FormatSignedPercent(b.data.Growth.TeacherGrowth), TextOptions{})
	b.gen.AddText("Contribution growth: "+FormatSignedPercent(b.data.Growth.ContributionGrowth), TextOptions{})
	b.gen.AddText("Balance growth: "+FormatSignedPercent(b.data.Growth.BalanceGrowth), TextOptions{
		MarginBottom: b.gen.Theme().SpacingMedium,
	})
	return nil
}

func (b *summaryBuilder) footer() {
	text := "Generated on " + FormatDate(b.data.GeneratedAt)
	if b.data.GeneratedBy != "" {
		text += " by " + b.data.GeneratedBy
	}
	b.gen.AddFooter(text)
}

func (b *summaryBuilder) noData(message string) {
	secondary := b.gen.Theme().Secondary
	b.gen.AddText(message, TextOptions{
		FontStyle:    "I",
		Color:        &secondary,
		MarginBottom: b.gen.Theme().SpacingMedium,
	})
}

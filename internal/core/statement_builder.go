package core

// builderSection is one (flag, render) pair in a builder's fixed emission
// order. Builders walk their section list once; a disabled section is skipped
// entirely, leaving no placeholder behind.
type builderSection struct {
	key    string
	render func() error
}

type statementBuilder struct {
	gen  *Generator
	data TeacherStatementData
	tpl  StatementTemplate
}

// BuildTeacherStatement renders a teacher savings statement as PDF bytes.
// It is a pure function of its inputs: identical data and template always
// produce an identical document. Section order is fixed — header, personal
// info, account summary, transaction history, interest breakdown, payment
// methods, footer — with each section gated by the template's flags.
func BuildTeacherStatement(data TeacherStatementData, tpl StatementTemplate) ([]byte, error) {
	g, err := buildStatement(data, tpl)
	if err != nil {
		return nil, err
	}
	return g.Bytes()
}

// buildStatement runs the full section sequence and returns the Generator
// before export, so tests can inspect headings and page state.
func buildStatement(data TeacherStatementData, tpl StatementTemplate) (*Generator, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	b := &statementBuilder{
		gen:  NewGenerator(nil, tpl.ThemeName),
		data: data,
		tpl:  tpl,
	}
	b.gen.SetCreationDate(data.GeneratedAt)
	b.data.Transactions = ApplyRunningBalances(data.Transactions)

	b.header()
	sections := []builderSection{
		{SectionPersonalInfo, b.personalInfo},
		{SectionAccountSummary, b.accountSummary},
		{SectionTransactionHistory, b.transactionHistory},
		{SectionInterestBreakdown, b.interestBreakdown},
		{SectionPaymentMethods, b.paymentMethods},
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

func (b *statementBuilder) header() {
	title := b.tpl.Header.Title
	if title == "" {
		title = "Teacher Savings Statement"
	}
	subtitle := ""
	if b.tpl.Header.ShowPeriod {
		subtitle = "Statement Period: " + FormatPeriod(b.data.Period)
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

func (b *statementBuilder) personalInfo() error {
	b.gen.AddTitle("Personal Information", 2)
	b.labelValue("Name", b.data.Teacher.FullName)
	b.labelValue("Employee ID", b.data.Teacher.EmployeeID)
	b.labelValue("Management Unit", b.data.Teacher.ManagementUnit)
	if b.data.Teacher.Email != "" {
		b.labelValue("Email", b.data.Teacher.Email)
	}
	if b.data.Teacher.Phone != "" {
		b.labelValue("Phone", b.data.Teacher.Phone)
	}
	b.gen.AddSpacer(b.gen.Theme().SpacingMedium)
	return nil
}

func (b *statementBuilder) accountSummary() error {
	b.gen.AddTitle("Account Summary", 2)
	content := b.gen.Geometry().ContentWidth()
	err := b.gen.AddTable(TableSpec{
		Headers:      []string{"Item", "Amount"},
		ColumnWidths: []float64{content * 0.6, content * 0.4},
		Rows: [][]string{
			{"Savings Balance", FormatAmount(b.data.Balance.SavingsBalance)},
			{"Total Contributions", FormatAmount(b.data.Balance.TotalContributions)},
			{"Total Interest Earned", FormatAmount(b.data.Balance.TotalInterest)},
		},
	})
	if err != nil {
		return err
	}
	b.gen.AddSpacer(b.gen.Theme().SpacingMedium)
	return nil
}

func (b *statementBuilder) transactionHistory() error {
	b.gen.AddTitle("Transaction History", 2)
	if len(b.data.Transactions) == 0 {
		b.noData("No transactions found for the selected period.")
		return nil
	}

	content := b.gen.Geometry().ContentWidth()
	widths := []float64{
		content * 0.12, // date
		content * 0.30, // description
		content * 0.14, // type
		content * 0.12, // status
		content * 0.16, // amount
		content * 0.16, // balance
	}
	rows := make([][]string, 0, len(b.data.Transactions))
	for _, tx := range b.data.Transactions {
		rows = append(rows, []string{
			tx.Date.Format("02/01/2006"),
			tx.Description,
			txTypeLabel(tx.Type),
			TitleStatus(tx.Status),
			FormatAmount(tx.Amount),
			FormatAmount(tx.RunningBalance),
		})
	}
	err := b.gen.AddTable(TableSpec{
		Headers:      []string{"Date", "Description", "Type", "Status", "Amount", "Balance"},
		ColumnWidths: widths,
		Rows:         rows,
		Striped:      true,
	})
	if err != nil {
		return err
	}
	b.gen.AddSpacer(b.gen.Theme().SpacingMedium)
	return nil
}

func (b *statementBuilder) interestBreakdown() error {
	b.gen.AddTitle("Interest Breakdown", 2)
	if len(b.data.Interest.Payments) == 0 {
		b.noData("No interest payments recorded for this period.")
		return nil
	}

	rows := make([][]string, 0, len(b.data.Interest.Payments))
	for _, p := range b.data.Interest.Payments {
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
	b.gen.AddText("Total interest earned: "+FormatAmount(b.data.Interest.TotalEarned), TextOptions{
		FontStyle:    "B",
		MarginBottom: b.gen.Theme().SpacingMedium,
	})
	return nil
}

func (b *statementBuilder) paymentMethods() error {
	b.gen.AddTitle("Payment Methods", 2)
	summaries := SummarizePaymentMethods(b.data.Transactions, b.data.Balance.TotalContributions)
	if len(summaries) == 0 {
		b.noData("No completed transactions for the selected period.")
		return nil
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{s.Label, FormatAmount(s.Amount), s.Percent})
	}
	err := b.gen.AddTable(TableSpec{
		Headers: []string{"Method", "Amount", "% of Contributions"},
		Rows:    rows,
	})
	if err != nil {
		return err
	}
	b.gen.AddSpacer(b.gen.Theme().SpacingMedium)
	return nil
}

func (b *statementBuilder) footer() {
	text := "Generated on " + FormatDate(b.data.GeneratedAt)
	if b.data.GeneratedBy != "" {
		text += " by " + b.data.GeneratedBy
	}
	b.gen.AddFooter(text)
}

func (b *statementBuilder) labelValue(label, value string) {
	if value == "" {
		value = "-"
	}
	b.gen.AddText(label+": "+value, TextOptions{FontSize: 10})
}

func (b *statementBuilder) noData(message string) {
	secondary := b.gen.Theme().Secondary
	b.gen.AddText(message, TextOptions{
		FontStyle:    "I",
		Color:        &secondary,
		MarginBottom: b.gen.Theme().SpacingMedium,
	})
}

// txTypeLabel renders a transaction type for table display.
func txTypeLabel(t string) string {
	switch t {
	case TxMobileMoney:
		return "Mobile Money"
	case TxControllerTransfer:
		return "Controller"
	case TxInterest:
		return "Interest"
	case TxDeposit:
		return "Deposit"
	default:
		return t
	}
}

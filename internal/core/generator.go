package core

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ── Layout constants ──────────────────────────────────────────────────────────

const (
	// mmPerPt converts a font size in points to millimetres.
	mmPerPt = 25.4 / 72

	// logoSpace is the vertical space reserved in the header when a logo URL
	// is configured. The image itself is not fetched or drawn.
	logoSpace = 18.0

	tableHeaderHeight = 8.0
	tableRowHeight    = 7.0
)

// lineHeight returns the vertical advance in mm for one line of text at the
// given font size in points.
func lineHeight(sizePt float64) float64 {
	return sizePt * mmPerPt * 1.45
}

// ── Options ───────────────────────────────────────────────────────────────────

// TextOptions controls a single AddText call. Zero values mean: 10pt, regular
// style, theme text colour, left aligned, no extra bottom margin.
type TextOptions struct {
	FontSize     float64
	FontStyle    string // "" regular, "B" bold, "I" italic
	Color        *RGB
	MarginBottom float64
	Align        string // "L", "C", "R"
}

// TableSpec describes one bordered table. Every row must have exactly
// len(Headers) cells; AddTable rejects anything else. ColumnWidths defaults to
// an equal split of the content width. Cell text is left aligned and not
// wrapped — overlong content overflows its column.
type TableSpec struct {
	Headers      []string
	Rows         [][]string
	ColumnWidths []float64

	HeaderFill      *RGB // defaults to the theme primary colour
	HeaderTextColor *RGB // defaults to white
	Striped         bool
	StripeFill      *RGB // defaults to the theme background tint
}

// ── Generator ─────────────────────────────────────────────────────────────────

// Generator is a stateful, cursor-based page writer. It owns all page and
// cursor state; callers compose documents exclusively through its drawing
// primitives. A Generator is built fresh for each document and must not be
// shared across goroutines or reused after Bytes/Base64.
type Generator struct {
	pdf   *gofpdf.Fpdf
	geom  PageGeometry
	theme Theme

	// footerText and footerTotal persist the footer once AddFooter has run,
	// so pages created afterwards still get stamped with the same fixed total.
	footerText  string
	footerTotal int
	footerSet   bool

	// headings records every AddTitle text in draw order, making section
	// emission auditable without parsing the rendered document.
	headings []string
}

// NewGenerator builds a Generator over an empty one-page document. override
// merges non-zero fields over the A4 default geometry; an override whose
// margins leave no horizontal room to draw is discarded in favour of the
// defaults. An unknown themeName falls back to classic_blue.
func NewGenerator(override *PageGeometry, themeName string) *Generator {
	geom := DefaultGeometry().merge(override)
	if geom.ContentWidth() <= 0 {
		geom = DefaultGeometry()
	}
	theme := ThemeByName(themeName)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: geom.Width, Ht: geom.Height},
	})
	pdf.SetMargins(geom.MarginLeft, geom.MarginTop, geom.MarginRight)
	// Pagination is decided exclusively by checkPageBreak.
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(1.2)
	pdf.SetFont(theme.FontFamily, "", 10)
	pdf.AddPage()
	pdf.SetXY(geom.MarginLeft, geom.MarginTop)

	return &Generator{pdf: pdf, geom: geom, theme: theme}
}

// Theme returns the resolved theme in effect for this document.
func (g *Generator) Theme() Theme { return g.theme }

// Geometry returns the resolved page geometry in effect for this document.
func (g *Generator) Geometry() PageGeometry { return g.geom }

// CursorY returns the current vertical cursor position on the current page.
func (g *Generator) CursorY() float64 { return g.pdf.GetY() }

// PageCount returns the number of pages created so far.
func (g *Generator) PageCount() int { return g.pdf.PageCount() }

// Headings returns the texts of all section headings drawn so far, in order.
func (g *Generator) Headings() []string {
	out := make([]string, len(g.headings))
	copy(out, g.headings)
	return out
}

// SetCreationDate pins the document metadata timestamp. Builders set it from
// the data's GeneratedAt so identical inputs produce byte-identical output.
func (g *Generator) SetCreationDate(t time.Time) {
	g.pdf.SetCreationDate(t)
}

// bottomLimit is the lowest Y any content may occupy.
func (g *Generator) bottomLimit() float64 {
	return g.geom.Height - g.geom.MarginBottom
}

// checkPageBreak inserts a page break if drawing requiredHeight from the
// current cursor would cross the bottom margin. This is the single policy
// governing all pagination; every primitive calls it with an honest estimate
// of the space it is about to consume.
func (g *Generator) checkPageBreak(requiredHeight float64) {
	if g.pdf.GetY()+requiredHeight > g.bottomLimit() {
		g.AddPageBreak()
	}
}

// ── Drawing primitives ────────────────────────────────────────────────────────

// AddHeader draws the document banner: optional reserved logo space, a large
// bold title in the primary colour, an optional subtitle in the secondary
// colour, then a horizontal rule.
func (g *Generator) AddHeader(title, subtitle, logoURL string) {
	if logoURL != "" {
		g.checkPageBreak(logoSpace)
		g.pdf.SetY(g.pdf.GetY() + logoSpace)
	}

	th := lineHeight(18)
	g.checkPageBreak(th)
	g.setFont("B", 18)
	g.setTextColor(g.theme.Primary)
	g.fullWidthCell(title, th, "L")

	if subtitle != "" {
		sh := lineHeight(11)
		g.checkPageBreak(sh)
		g.setFont("", 11)
		g.setTextColor(g.theme.Secondary)
		g.fullWidthCell(subtitle, sh, "L")
	}

	y := g.pdf.GetY() + g.theme.SpacingSmall
	g.setDrawColor(g.theme.Primary)
	g.pdf.SetLineWidth(0.6)
	g.pdf.Line(g.geom.MarginLeft, y, g.geom.Width-g.geom.MarginRight, y)
	g.pdf.SetY(y + g.theme.SpacingMedium)
}

// AddTitle draws a bold section heading. Level 1 is largest. The heading's
// own height plus one following body line is reserved before drawing, so a
// heading is never stranded alone at the bottom of a page.
func (g *Generator) AddTitle(text string, level int) {
	var size float64
	switch level {
	case 1:
		size = 16
	case 2:
		size = 13
	default:
		size = 11
	}
	h := lineHeight(size)
	g.checkPageBreak(h + lineHeight(10))
	g.setFont("B", size)
	g.setTextColor(g.theme.Primary)
	g.fullWidthCell(text, h, "L")
	g.pdf.SetY(g.pdf.GetY() + g.theme.SpacingSmall)
	g.headings = append(g.headings, text)
}

// AddText word-wraps text to the content width and draws each line,
// advancing the cursor past the block plus opts.MarginBottom. A multi-line
// paragraph may split across a page boundary, but no line is ever drawn
// below the bottom margin.
func (g *Generator) AddText(text string, opts TextOptions) {
	if opts.FontSize == 0 {
		opts.FontSize = 10
	}
	if opts.Align == "" {
		opts.Align = "L"
	}
	color := g.theme.Text
	if opts.Color != nil {
		color = *opts.Color
	}

	g.setFont(opts.FontStyle, opts.FontSize)
	g.setTextColor(color)

	h := lineHeight(opts.FontSize)
	g.checkPageBreak(h / 2)
	for _, line := range g.wrap(text, g.geom.ContentWidth()) {
		g.checkPageBreak(h)
		g.fullWidthCell(line, h, opts.Align)
	}
	if opts.MarginBottom > 0 {
		g.pdf.SetY(g.pdf.GetY() + opts.MarginBottom)
	}
}

// AddTable draws a filled header row, body rows with optional alternating
// shading, then the outer border and column separators. The whole table is
// placed on a single page: if it does not fit in the remaining space, a page
// break is inserted before anything is drawn. Rows whose cell count does not
// match the header count are rejected with a DataShapeError.
func (g *Generator) AddTable(spec TableSpec) error {
	cols := len(spec.Headers)
	if cols == 0 {
		return &DataShapeError{Msg: "table has no header columns"}
	}
	for i, row := range spec.Rows {
		if len(row) != cols {
			return &DataShapeError{Msg: fmt.Sprintf("table row %d has %d cells, want %d", i, len(row), cols)}
		}
	}

	widths := spec.ColumnWidths
	if len(widths) != cols {
		widths = make([]float64, cols)
		each := g.geom.ContentWidth() / float64(cols)
		for i := range widths {
			widths[i] = each
		}
	}
	tableWidth := 0.0
	for _, w := range widths {
		tableWidth += w
	}

	g.checkPageBreak(tableHeaderHeight + tableRowHeight*float64(len(spec.Rows)))

	left := g.geom.MarginLeft
	top := g.pdf.GetY()

	headerFill := g.theme.Primary
	if spec.HeaderFill != nil {
		headerFill = *spec.HeaderFill
	}
	headerText := RGB{R: 255, G: 255, B: 255}
	if spec.HeaderTextColor != nil {
		headerText = *spec.HeaderTextColor
	}
	stripe := g.theme.Background
	if spec.StripeFill != nil {
		stripe = *spec.StripeFill
	}

	// Header row.
	g.pdf.SetFillColor(headerFill.R, headerFill.G, headerFill.B)
	g.setFont("B", 9)
	g.setTextColor(headerText)
	g.pdf.SetXY(left, top)
	for i, h := range spec.Headers {
		g.pdf.CellFormat(widths[i], tableHeaderHeight, h, "", 0, "L", true, 0, "")
	}

	// Body rows.
	g.setFont("", 9)
	g.setTextColor(g.theme.Text)
	y := top + tableHeaderHeight
	for r, row := range spec.Rows {
		if spec.Striped && r%2 == 1 {
			g.pdf.SetFillColor(stripe.R, stripe.G, stripe.B)
			g.pdf.Rect(left, y, tableWidth, tableRowHeight, "F")
		}
		g.pdf.SetXY(left, y)
		for c, cell := range row {
			g.pdf.CellFormat(widths[c], tableRowHeight, cell, "", 0, "L", false, 0, "")
		}
		y += tableRowHeight
	}

	// Border and column separators.
	g.setDrawColor(g.theme.Border)
	g.pdf.SetLineWidth(0.2)
	g.pdf.Rect(left, top, tableWidth, y-top, "D")
	g.pdf.Line(left, top+tableHeaderHeight, left+tableWidth, top+tableHeaderHeight)
	x := left
	for c := 0; c < cols-1; c++ {
		x += widths[c]
		g.pdf.Line(x, top, x, y)
	}

	g.pdf.SetXY(left, y+g.theme.SpacingSmall)
	return nil
}

// AddSpacer advances the cursor by height mm without drawing.
func (g *Generator) AddSpacer(height float64) {
	g.checkPageBreak(height)
	g.pdf.SetY(g.pdf.GetY() + height)
}

// AddPageBreak appends a new page and resets the cursor to the top-left
// content corner. Once AddFooter has run, the new page is stamped immediately
// so no page ever renders without the footer.
func (g *Generator) AddPageBreak() {
	g.pdf.AddPage()
	if g.footerSet {
		g.stampFooter(g.pdf.PageCount())
	}
	g.pdf.SetXY(g.geom.MarginLeft, g.geom.MarginTop)
}

// AddFooter stamps every page with a separator rule, the given text
// left-aligned, and "Page N of TOTAL" right-aligned below the bottom margin.
// TOTAL is fixed at call time; a page created afterwards is still stamped,
// carrying its own number against the same fixed total.
func (g *Generator) AddFooter(text string) {
	g.footerText = text
	g.footerTotal = g.pdf.PageCount()
	g.footerSet = true

	for i := 1; i <= g.footerTotal; i++ {
		g.pdf.SetPage(i)
		g.stampFooter(i)
	}
	g.pdf.SetPage(g.footerTotal)
}

// stampFooter draws the registered footer on the current page.
func (g *Generator) stampFooter(page int) {
	left := g.geom.MarginLeft
	right := g.geom.Width - g.geom.MarginRight
	y := g.bottomLimit() + 3

	g.setDrawColor(g.theme.Border)
	g.pdf.SetLineWidth(0.2)
	g.pdf.Line(left, y, right, y)

	g.setFont("I", 8)
	g.setTextColor(g.theme.Secondary)
	g.pdf.SetXY(left, y+1.5)
	half := g.geom.ContentWidth() / 2
	g.pdf.CellFormat(half, 4, g.footerText, "", 0, "L", false, 0, "")
	g.pdf.CellFormat(half, 4, fmt.Sprintf("Page %d of %d", page, g.footerTotal), "", 0, "R", false, 0, "")
}

// ── Export ────────────────────────────────────────────────────────────────────

// Bytes serializes the finished document. The Generator must not be used for
// further drawing afterwards.
func (g *Generator) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := g.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}
	return buf.Bytes(), nil
}

// Base64 serializes the finished document as a data-URI string.
func (g *Generator) Base64() (string, error) {
	b, err := g.Bytes()
	if err != nil {
		return "", err
	}
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(b), nil
}

// ── Internal helpers ──────────────────────────────────────────────────────────

func (g *Generator) setFont(style string, size float64) {
	g.pdf.SetFont(g.theme.FontFamily, style, size)
}

func (g *Generator) setTextColor(c RGB) {
	g.pdf.SetTextColor(c.R, c.G, c.B)
}

func (g *Generator) setDrawColor(c RGB) {
	g.pdf.SetDrawColor(c.R, c.G, c.B)
}

// fullWidthCell draws one line spanning the content width and moves the
// cursor to the start of the next line.
func (g *Generator) fullWidthCell(text string, height float64, align string) {
	g.pdf.SetX(g.geom.MarginLeft)
	g.pdf.CellFormat(g.geom.ContentWidth(), height, text, "", 1, align, false, 0, "")
}

// wrap splits text into lines no wider than width mm at word boundaries,
// measured with the currently selected font. A single word wider than the
// line gets a line of its own.
func (g *Generator) wrap(text string, width float64) []string {
	if text == "" {
		return []string{""}
	}
	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if g.pdf.GetStringWidth(candidate) > width && current != "" {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

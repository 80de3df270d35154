package core_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"association-reports/internal/core"
)

func TestGenerator_PaginationNeverOverflows(t *testing.T) {
	g := core.NewGenerator(nil, "classic_blue")
	bottom := g.Geometry().Height - g.Geometry().MarginBottom

	long := "The quick brown fox jumps over the lazy dog while the controller report " +
		"is reconciled against the mobile money ledger for the current savings period."
	for i := 0; i < 200; i++ {
		g.AddText(long, core.TextOptions{})
		if y := g.CursorY(); y > bottom+0.01 {
			t.Fatalf("cursor %.2f beyond bottom limit %.2f after paragraph %d", y, bottom, i)
		}
	}
	if g.PageCount() < 2 {
		t.Errorf("expected multiple pages after 200 paragraphs, got %d", g.PageCount())
	}
}

func TestGenerator_TableAtomicity(t *testing.T) {
	g := core.NewGenerator(nil, "classic_blue")
	bottom := g.Geometry().Height - g.Geometry().MarginBottom

	// Park the cursor low enough that a 10-row table cannot fit.
	g.AddSpacer(230)
	before := g.PageCount()

	rows := make([][]string, 10)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("row %d", i), "something", "GHS 10.00"}
	}
	err := g.AddTable(core.TableSpec{
		Headers: []string{"Item", "Detail", "Amount"},
		Rows:    rows,
	})
	if err != nil {
		t.Fatalf("AddTable: %v", err)
	}

	if got := g.PageCount(); got != before+1 {
		t.Errorf("table should have broken to a new page: pages %d -> %d", before, got)
	}
	// Having broken once, the whole table fits the fresh page: no second break,
	// and the cursor is still above the bottom margin.
	if y := g.CursorY(); y > bottom {
		t.Errorf("cursor %.2f below bottom limit %.2f after table", y, bottom)
	}
}

func TestGenerator_TableRowArity(t *testing.T) {
	g := core.NewGenerator(nil, "classic_blue")
	err := g.AddTable(core.TableSpec{
		Headers: []string{"A", "B"},
		Rows:    [][]string{{"1", "2"}, {"only one"}},
	})
	if err == nil {
		t.Fatal("expected error for mismatched row arity")
	}
	var shapeErr *core.DataShapeError
	if !errors.As(err, &shapeErr) {
		t.Errorf("expected DataShapeError, got %T: %v", err, err)
	}
}

func TestGenerator_TitleNeverOrphaned(t *testing.T) {
	g := core.NewGenerator(nil, "classic_blue")

	// Leave less room than the heading plus one body line needs.
	g.AddSpacer(258)
	before := g.PageCount()
	g.AddTitle("Transaction History", 2)

	if got := g.PageCount(); got != before+1 {
		t.Errorf("heading near page bottom should move to a new page: pages %d -> %d", before, got)
	}
	if y := g.CursorY(); y > g.Geometry().MarginTop+20 {
		t.Errorf("heading should sit at the top of the new page, cursor at %.2f", y)
	}
}

func TestGenerator_FooterStampsEveryPage(t *testing.T) {
	g := core.NewGenerator(nil, "classic_blue")
	g.AddText("page one", core.TextOptions{})
	g.AddPageBreak()
	g.AddText("page two", core.TextOptions{})
	g.AddPageBreak()
	g.AddText("page three", core.TextOptions{})

	before := g.PageCount()
	g.AddFooter("Generated on 01 Mar 2026")
	if got := g.PageCount(); got != before {
		t.Errorf("AddFooter must not create pages: %d -> %d", before, got)
	}

	out, err := g.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty document")
	}
}

func TestGenerator_SpacerTriggersPageBreak(t *testing.T) {
	g := core.NewGenerator(nil, "classic_blue")
	g.AddSpacer(260)
	before := g.PageCount()
	g.AddSpacer(50)
	if got := g.PageCount(); got != before+1 {
		t.Errorf("spacer past the bottom margin should break: pages %d -> %d", before, got)
	}
}

func TestGenerator_ThemeFallback(t *testing.T) {
	g := core.NewGenerator(nil, "nonexistent_theme")
	if got := g.Theme().Name; got != "classic_blue" {
		t.Errorf("unknown theme should fall back to classic_blue, got %q", got)
	}
}

func TestGenerator_GeometryOverride(t *testing.T) {
	g := core.NewGenerator(&core.PageGeometry{MarginLeft: 25, MarginRight: 25}, "")
	geom := g.Geometry()
	if geom.Width != 210 || geom.Height != 297 {
		t.Errorf("unset dimensions should keep A4 defaults, got %.0fx%.0f", geom.Width, geom.Height)
	}
	if geom.ContentWidth() != 160 {
		t.Errorf("content width = %.1f, want 160", geom.ContentWidth())
	}
}

func TestGenerator_RejectsUndrawableMargins(t *testing.T) {
	g := core.NewGenerator(&core.PageGeometry{MarginLeft: 120, MarginRight: 120}, "")
	if w := g.Geometry().ContentWidth(); w != 180 {
		t.Errorf("margins wider than the page should fall back to defaults, content width = %.1f", w)
	}
}

func TestGenerator_Base64DataURI(t *testing.T) {
	g := core.NewGenerator(nil, "")
	g.AddText("hello", core.TextOptions{})
	s, err := g.Base64()
	if err != nil {
		t.Fatalf("Base64: %v", err)
	}
	if !strings.HasPrefix(s, "data:application/pdf;base64,") {
		t.Errorf("missing data-URI prefix: %.40s", s)
	}
}

package views

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"seolink/internal/adapters/markup"
	"seolink/internal/adapters/memstore"
	"seolink/internal/application/commands"
	"seolink/internal/domain"
)

type staticAnalytics []domain.PerformanceRow

func (s staticAnalytics) LoadPerformanceRows(ctx context.Context) ([]domain.PerformanceRow, error) {
	return s, nil
}

const starvedPage = `<Layout>
  <SEO title="%s" />
  <main>
    <p>Body.</p>
  </main>
</Layout>
`

const hubPage = `<Layout>
  <SEO title="Inventory stock software cycle counting" />
  <main>
    <h2>Overview</h2>
    <p>Pick a system.</p>
  </main>
</Layout>
`

func newReviewPipeline() (*commands.Pipeline, *memstore.Store) {
	store := memstore.New(map[string]string{
		"inventory-basics.tsx":      strings.Replace(starvedPage, "%s", "Stock inventory warehouse", 1),
		"cycle-counting.tsx":        strings.Replace(starvedPage, "%s", "Cycle counting stock", 1),
		"inventory-guide/index.tsx": hubPage,
	})
	rows := staticAnalytics{{
		URL:         "/inventory-guide",
		Performance: domain.Performance{Clicks: 80, Impressions: 1000, CTR: 0.08, Position: 5},
	}}
	return commands.NewPipeline(store, markup.NewRegistry(markup.DefaultOptions()), rows), store
}

func loadedReview(t *testing.T) (*ReviewModel, *memstore.Store) {
	t.Helper()
	p, store := newReviewPipeline()
	m := NewReviewModel(p)

	msg := m.load()()
	loaded, ok := msg.(SuggestionsLoadedMsg)
	if !ok {
		t.Fatalf("expected SuggestionsLoadedMsg, got %T", msg)
	}
	m.Update(loaded)
	if len(m.items) == 0 {
		t.Fatal("expected suggestions to review")
	}
	return m, store
}

func press(m *ReviewModel, k string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	return cmd
}

func TestReviewModel_SelectionGroupsBySource(t *testing.T) {
	m, _ := loadedReview(t)

	sel := m.Selection()
	if sel.Links != len(m.items) {
		t.Errorf("expected every suggestion selected initially, got %d of %d", sel.Links, len(m.items))
	}
	if len(sel.Plans) != 1 || sel.Plans[0].Source.URL != "inventory-guide" {
		t.Fatalf("expected one plan for inventory-guide, got %+v", sel.Plans)
	}

	press(m, "x")
	if got := m.Selection().Links; got != len(m.items)-1 {
		t.Errorf("expected toggle to drop one link, got %d", got)
	}

	press(m, "t")
	if got := m.Selection().Links; got != len(m.items) {
		t.Errorf("expected toggle all to select everything, got %d", got)
	}
	press(m, "t")
	if got := m.Selection().Links; got != 0 {
		t.Errorf("expected toggle all to clear selection, got %d", got)
	}
}

func TestReviewModel_ApplyRequiresSelection(t *testing.T) {
	m, _ := loadedReview(t)

	press(m, "t")
	if cmd := press(m, "a"); cmd != nil {
		t.Error("expected no command with empty selection")
	}
	if !m.MessageErr || m.Message != "Nothing selected" {
		t.Errorf("unexpected message %q", m.Message)
	}

	press(m, "t")
	cmd := press(m, "a")
	if cmd == nil {
		t.Fatal("expected confirm command")
	}
	msg, ok := cmd().(SwitchToConfirmMsg)
	if !ok || msg.Selection.Links != len(m.items) {
		t.Errorf("unexpected confirm message %+v", msg)
	}
}

func TestReviewModel_Copy(t *testing.T) {
	m, _ := loadedReview(t)

	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}
	press(m, "c")
	if !strings.Contains(copied, `<Link to="/`) || !strings.Contains(copied, "related-link") {
		t.Errorf("expected rendered link element, got %q", copied)
	}

	m.copy = func(string) error { return errors.New("no clipboard") }
	press(m, "c")
	if !m.MessageErr || !strings.Contains(m.Message, "no clipboard") {
		t.Errorf("expected copy failure message, got %q", m.Message)
	}
}

func TestReviewModel_OpenAtInsertionLine(t *testing.T) {
	m, _ := loadedReview(t)

	cmd := press(m, "e")
	if cmd == nil {
		t.Fatal("expected open command")
	}
	msg := cmd().(OpenEditorMsg)
	if msg.Path != "inventory-guide/index.tsx" {
		t.Errorf("expected source page path, got %s", msg.Path)
	}
	// the first insertion point closes the h2 on line 4
	if msg.Line != 4 {
		t.Errorf("expected line 4, got %d", msg.Line)
	}
}

func TestReviewModel_LoadingIgnoresKeys(t *testing.T) {
	p, _ := newReviewPipeline()
	m := NewReviewModel(p)

	if cmd := press(m, "a"); cmd != nil {
		t.Error("expected keys to be ignored while loading")
	}
	if !strings.Contains(m.View(), "Ranking pages") {
		t.Error("expected loading view")
	}
}

func TestConfirmModel_AppliesSelection(t *testing.T) {
	m, store := loadedReview(t)
	sel := m.Selection()

	c := NewConfirmModel(m.pipeline)
	c.SetSelection(sel)
	if !strings.Contains(c.View(), "Write 2 links into 1 pages?") {
		t.Errorf("unexpected prompt:\n%s", c.View())
	}

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if cmd == nil {
		t.Fatal("expected apply command")
	}
	applied, ok := cmd().(LinksAppliedMsg)
	if !ok {
		t.Fatalf("expected LinksAppliedMsg")
	}
	if applied.Result.LinksAdded != 2 {
		t.Errorf("expected 2 links written, got %d", applied.Result.LinksAdded)
	}

	text := store.Text("inventory-guide/index.tsx")
	if !strings.Contains(text, `to="/inventory-basics"`) || !strings.Contains(text, `to="/cycle-counting"`) {
		t.Errorf("expected both links in page, got:\n%s", text)
	}
}

func TestConfirmModel_Cancel(t *testing.T) {
	p, store := newReviewPipeline()
	c := NewConfirmModel(p)

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(SwitchToReviewMsg); !ok {
		t.Error("expected cancel to return to review")
	}
	if store.TotalWrites() != 0 {
		t.Error("cancel must not write")
	}
}

func TestPaginator(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	if p.TotalPages() != 3 {
		t.Errorf("expected 3 pages, got %d", p.TotalPages())
	}
	for i := 0; i < 4; i++ {
		p.CursorDown()
	}
	if p.CurrentPage() != 2 {
		t.Errorf("expected cursor to carry to page 2, got %d", p.CurrentPage())
	}
	if start, end := p.VisibleRange(); start != 3 || end != 6 {
		t.Errorf("expected range [3,6), got [%d,%d)", start, end)
	}

	p.NextPage()
	if start, end := p.VisibleRange(); start != 6 || end != 7 || p.Cursor() != 6 {
		t.Errorf("expected last page [6,7) with cursor 6, got [%d,%d) cursor %d", start, end, p.Cursor())
	}
	if p.NextPage() {
		t.Error("expected no page past the end")
	}

	p.SetTotal(2)
	if p.Cursor() != 1 || p.CurrentPage() != 1 {
		t.Errorf("expected cursor clamped to 1 on page 1, got %d on %d", p.Cursor(), p.CurrentPage())
	}
}

func TestViewModels_Init(t *testing.T) {
	p, _ := newReviewPipeline()

	tests := []struct {
		name    string
		model   tea.Model
		wantCmd bool
	}{
		{name: "review starts ranking", model: NewReviewModel(p), wantCmd: true},
		{name: "confirm", model: NewConfirmModel(p)},
		{name: "help", model: NewHelpModel()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if cmd := tt.model.Init(); (cmd != nil) != tt.wantCmd {
				t.Errorf("expected command=%v from Init, got %v", tt.wantCmd, cmd != nil)
			}
		})
	}
}

func TestHelpModel_Close(t *testing.T) {
	var m tea.Model = NewHelpModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if cmd == nil {
		t.Fatal("expected a command closing help")
	}
	if _, ok := cmd().(SwitchToReviewMsg); !ok {
		t.Error("expected SwitchToReviewMsg")
	}
}

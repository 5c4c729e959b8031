package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"seolink/internal/adapters/tui/styles"
	"seolink/internal/application/commands"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

var _ tea.Model = (*ConfirmModel)(nil)

// ConfirmModel asks before writing a selection into the page sources
type ConfirmModel struct {
	ViewState
	pipeline  *commands.Pipeline
	selection Selection
	applying  bool
	Keys      ConfirmKeyMap
}

// NewConfirmModel creates a new confirmation model with default keys
func NewConfirmModel(p *commands.Pipeline) *ConfirmModel {
	return &ConfirmModel{
		pipeline: p,
		Keys:     DefaultConfirmKeys,
	}
}

// SetSelection sets the links awaiting confirmation
func (m *ConfirmModel) SetSelection(sel Selection) {
	m.selection = sel
	m.applying = false
	m.ClearMessage()
}

// Init initializes the confirmation view
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.applying {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Cancel):
		return m, func() tea.Msg { return SwitchToReviewMsg{} }
	case key.Matches(keyMsg, m.Keys.Confirm):
		m.applying = true
		return m, m.apply()
	}
	return m, nil
}

func (m *ConfirmModel) apply() tea.Cmd {
	plans := m.selection.Plans
	return func() tea.Msg {
		result, err := commands.NewApplyLinksCommand(m.pipeline, plans, nil).Execute(context.Background())
		if err != nil {
			return ApplyErrMsg{Err: err}
		}
		return LinksAppliedMsg{Result: result}
	}
}

// View renders the confirmation view
func (m *ConfirmModel) View() string {
	v := NewViewBuilder().Title("Apply links")
	v.Message(m.Message, m.MessageErr)

	for _, plan := range m.selection.Plans {
		v.Line(styles.InputLabel.Render(plan.Source.SourcePath))
		for _, s := range plan.Suggestions {
			v.Line("  + " + styles.TargetPage.Render("/"+s.Target.URL) + "  " + styles.Anchor.Render(s.AnchorText))
		}
	}
	v.BlankLine()

	if m.applying {
		return v.Muted("Writing pages...").String()
	}

	question := fmt.Sprintf("Write %d links into %d pages?", m.selection.Links, len(m.selection.Plans))
	return v.Line(RenderConfirmPrompt(question)).String()
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}

package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"seolink/internal/adapters/tui/styles"
	"seolink/internal/application/commands"
	"seolink/internal/domain"
)

// reviewChrome is the number of lines taken by everything but the list
const reviewChrome = 14

// ReviewKeyMap defines key bindings for the review view
type ReviewKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Copy      key.Binding
	Open      key.Binding
	Apply     key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var ReviewKeys = ReviewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("ctrl+f", "pgdown"),
		key.WithHelp("ctrl+f", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("ctrl+b", "pgup"),
		key.WithHelp("ctrl+b", "prev page"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space", "toggle"),
	),
	ToggleAll: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle all"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy link"),
	),
	Open: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit page"),
	),
	Apply: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "apply"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Selection is the subset of suggestions chosen for writing, grouped by source page
type Selection struct {
	Plans []domain.SourcePlan
	Links int
}

type reviewItem struct {
	suggestion domain.LinkSuggestion
	selected   bool
}

// ReviewModel lists ranked suggestions and lets the user pick which to write
type ReviewModel struct {
	ViewState
	pipeline  *commands.Pipeline
	items     []reviewItem
	sources   int
	paginator *Paginator
	loading   bool
	spinner   spinner.Model

	copy func(string) error
}

// NewReviewModel creates a new review view model
func NewReviewModel(p *commands.Pipeline) *ReviewModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return &ReviewModel{
		pipeline:  p,
		paginator: NewPaginator(10),
		loading:   true,
		spinner:   s,
		copy:      clipboard.WriteAll,
	}
}

// Init starts ranking
func (m *ReviewModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

// Reload ranks the corpus again, e.g. after links were written
func (m *ReviewModel) Reload() tea.Cmd {
	m.loading = true
	return m.Init()
}

func (m *ReviewModel) load() tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewSuggestCommand(m.pipeline).Execute(context.Background())
		if err != nil {
			return SuggestionsErrMsg{Err: err}
		}
		return SuggestionsLoadedMsg{Result: result}
	}
}

// SetSuggestions replaces the list; every suggestion starts selected
func (m *ReviewModel) SetSuggestions(result *commands.SuggestResult) {
	m.items = m.items[:0]
	for _, plan := range result.Plans {
		for _, s := range plan.Suggestions {
			m.items = append(m.items, reviewItem{suggestion: s, selected: true})
		}
	}
	m.sources = len(result.Plans)
	m.paginator.SetTotal(len(m.items))
	m.loading = false
}

// SetSize updates the view dimensions and page size
func (m *ReviewModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.paginator.SetPageSize(max(height-reviewChrome, 5))
}

// Selection groups the selected suggestions by source, keeping list order
func (m *ReviewModel) Selection() Selection {
	var sel Selection
	index := make(map[string]int)
	for _, item := range m.items {
		if !item.selected {
			continue
		}
		src := item.suggestion.Source
		i, ok := index[src.URL]
		if !ok {
			i = len(sel.Plans)
			index[src.URL] = i
			sel.Plans = append(sel.Plans, domain.SourcePlan{Source: src})
		}
		sel.Plans[i].Suggestions = append(sel.Plans[i].Suggestions, item.suggestion)
		sel.Links++
	}
	return sel
}

// Update handles messages for the review view
func (m *ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SuggestionsLoadedMsg:
		m.SetSuggestions(msg.Result)
		if m.Message == "" {
			m.SetMessage(msg.Result.Message, false)
		}
		return m, nil

	case SuggestionsErrMsg:
		m.loading = false
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *ReviewModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, ReviewKeys.Quit) {
		return tea.Quit
	}
	if m.loading {
		return nil
	}

	switch {
	case key.Matches(msg, ReviewKeys.Up):
		m.paginator.CursorUp()
	case key.Matches(msg, ReviewKeys.Down):
		m.paginator.CursorDown()
	case key.Matches(msg, ReviewKeys.NextPage):
		m.paginator.NextPage()
	case key.Matches(msg, ReviewKeys.PrevPage):
		m.paginator.PrevPage()

	case key.Matches(msg, ReviewKeys.Toggle):
		if item := m.current(); item != nil {
			item.selected = !item.selected
		}

	case key.Matches(msg, ReviewKeys.ToggleAll):
		all := true
		for _, item := range m.items {
			all = all && item.selected
		}
		for i := range m.items {
			m.items[i].selected = !all
		}

	case key.Matches(msg, ReviewKeys.Copy):
		item := m.current()
		if item == nil {
			return nil
		}
		if err := m.copy(m.linkElement(item.suggestion)); err != nil {
			m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
			return nil
		}
		m.SetMessage("Copied link to /"+item.suggestion.Target.URL, false)

	case key.Matches(msg, ReviewKeys.Open):
		item := m.current()
		if item == nil {
			return nil
		}
		path := item.suggestion.Source.SourcePath
		line := m.insertionLine(path)
		return func() tea.Msg {
			return OpenEditorMsg{Path: path, Line: line}
		}

	case key.Matches(msg, ReviewKeys.Apply):
		sel := m.Selection()
		if sel.Links == 0 {
			m.SetMessage("Nothing selected", true)
			return nil
		}
		return func() tea.Msg {
			return SwitchToConfirmMsg{Selection: sel}
		}

	case key.Matches(msg, ReviewKeys.Reload):
		m.ClearMessage()
		return m.Reload()

	case key.Matches(msg, ReviewKeys.Help):
		return func() tea.Msg {
			return SwitchToHelpMsg{}
		}
	}
	return nil
}

func (m *ReviewModel) current() *reviewItem {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.paginator.Cursor()]
}

func (m *ReviewModel) linkElement(s domain.LinkSuggestion) string {
	extractor := m.pipeline.Extractors.ExtractorFor(s.Source.SourcePath)
	if extractor == nil {
		return "/" + s.Target.URL
	}
	return extractor.LinkElement(s.Target.URL, s.AnchorText)
}

// insertionLine returns the 1-based line of the first insertion point, or 1
func (m *ReviewModel) insertionLine(path string) int {
	extractor := m.pipeline.Extractors.ExtractorFor(path)
	text, err := m.pipeline.Store.Read(path)
	if extractor == nil || err != nil {
		return 1
	}
	points := extractor.InsertionPoints(text)
	if len(points) == 0 {
		return 1
	}
	return strings.Count(text[:points[0].Offset], "\n") + 1
}

// View renders the review view
func (m *ReviewModel) View() string {
	v := NewViewBuilder().Title("Link review")

	if m.loading {
		return v.Line(m.spinner.View() + " Ranking pages...").String()
	}

	v.Subtitle(fmt.Sprintf("%d suggestions across %d pages • page %d/%d",
		len(m.items), m.sources, m.paginator.CurrentPage(), m.paginator.TotalPages()))
	v.Message(m.Message, m.MessageErr)

	if len(m.items) == 0 {
		v.Muted("No link-starved page has a similar high-authority source.")
	}

	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		v.Line(m.renderRow(i))
	}

	if item := m.current(); item != nil {
		v.BlankLine()
		v.Line(styles.InputLabel.Render(item.suggestion.Source.SourcePath))
		v.Line(styles.Preview.Render(m.linkElement(item.suggestion)))
	}

	v.BlankLine()
	return v.Help(ReviewKeys.Toggle, ReviewKeys.Apply, ReviewKeys.Copy, ReviewKeys.Open, ReviewKeys.Help, ReviewKeys.Quit).String()
}

func (m *ReviewModel) renderRow(i int) string {
	item := m.items[i]
	s := item.suggestion

	check := styles.Unchecked.String()
	if item.selected {
		check = styles.Checked.String()
	}

	if i == m.paginator.Cursor() {
		row := fmt.Sprintf("/%s -> /%s  %.2f  %q", s.Source.URL, s.Target.URL, s.Similarity, s.AnchorText)
		return check + styles.RowSelected.Render(row)
	}

	return check + styles.Row.Render(fmt.Sprintf("%s -> %s  %s  %s",
		styles.SourcePage.Render("/"+s.Source.URL),
		styles.TargetPage.Render("/"+s.Target.URL),
		RenderSimilarity(s.Similarity),
		styles.Anchor.Render(fmt.Sprintf("%q", s.AnchorText)),
	))
}

package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"seolink/internal/adapters/editor"
	"seolink/internal/adapters/tui/views"
	"seolink/internal/application/commands"
)

// ViewState represents the current view
type ViewState int

const (
	ViewReview ViewState = iota
	ViewConfirm
	ViewHelp
)

// App is the link review TUI
type App struct {
	root   string // content root, for opening page sources
	editor *editor.Opener

	state   ViewState
	review  *views.ReviewModel
	confirm *views.ConfirmModel
	help    *views.HelpModel
}

// NewApp creates a new TUI application. ed may be nil to disable editing.
func NewApp(p *commands.Pipeline, root string, ed *editor.Opener) *App {
	return &App{
		root:    root,
		editor:  ed,
		state:   ViewReview,
		review:  views.NewReviewModel(p),
		confirm: views.NewConfirmModel(p),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.review.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.review.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToReviewMsg:
		a.state = ViewReview
		return a, nil

	case views.SwitchToConfirmMsg:
		a.state = ViewConfirm
		a.confirm.SetSelection(msg.Selection)
		return a, nil

	case views.LinksAppliedMsg:
		a.state = ViewReview
		a.review.SetMessage(msg.Result.Message, msg.Result.Errors > 0)
		return a, a.review.Reload()

	case views.ApplyErrMsg:
		a.state = ViewReview
		a.review.SetMessage(msg.Err.Error(), true)
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path, msg.Line)

	case editorFinishedMsg:
		if msg.err != nil {
			a.review.SetMessage(msg.err.Error(), true)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewReview:
		_, cmd = a.review.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string, line int) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(filepath.Join(a.root, filepath.FromSlash(path)), line)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewConfirm:
		return a.confirm.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.review.View()
	}
}

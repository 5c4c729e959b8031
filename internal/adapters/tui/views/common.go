package views

import "seolink/internal/application/commands"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages exchanged between the review views and the app

// SwitchToReviewMsg returns to the suggestion list
type SwitchToReviewMsg struct{}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// SwitchToConfirmMsg asks before writing the selected links
type SwitchToConfirmMsg struct {
	Selection Selection
}

// OpenEditorMsg opens a page source at a line
type OpenEditorMsg struct {
	Path string
	Line int
}

// SuggestionsLoadedMsg carries a fresh ranking
type SuggestionsLoadedMsg struct {
	Result *commands.SuggestResult
}

// SuggestionsErrMsg reports a failed ranking
type SuggestionsErrMsg struct {
	Err error
}

// LinksAppliedMsg reports the outcome of writing a selection
type LinksAppliedMsg struct {
	Result *commands.ApplyLinksResult
}

// ApplyErrMsg reports a failed apply
type ApplyErrMsg struct {
	Err error
}

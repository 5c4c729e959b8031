package tui

import (
	"testing"

	"seolink/internal/adapters/markup"
	"seolink/internal/adapters/memstore"
	"seolink/internal/adapters/tui/views"
	"seolink/internal/application/commands"
)

func TestApp_LinksApplied(t *testing.T) {
	tests := []struct {
		name    string
		result  *commands.ApplyLinksResult
		wantErr bool
	}{
		{
			name:   "all written",
			result: &commands.ApplyLinksResult{PagesUpdated: 2, LinksAdded: 3, Message: "Updated 2 pages with 3 links"},
		},
		{
			name:    "failed pages shown as error",
			result:  &commands.ApplyLinksResult{Errors: 2, Message: "Updated 0 pages with 0 links, 2 pages failed"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := commands.NewPipeline(memstore.New(nil), markup.NewRegistry(markup.DefaultOptions()), nil)
			a := NewApp(p, t.TempDir(), nil)
			a.state = ViewConfirm

			_, cmd := a.Update(views.LinksAppliedMsg{Result: tt.result})
			if cmd == nil {
				t.Error("expected suggestions to reload")
			}
			if a.state != ViewReview {
				t.Errorf("expected review view, got %v", a.state)
			}
			if a.review.Message != tt.result.Message || a.review.MessageErr != tt.wantErr {
				t.Errorf("expected message %q (error=%v), got %q (error=%v)",
					tt.result.Message, tt.wantErr, a.review.Message, a.review.MessageErr)
			}
		})
	}
}

package commands

import (
	"context"
	"fmt"
	"strings"

	"seolink/internal/application"
	"seolink/internal/domain"
)

// PageInfoResult describes one indexed page and its link opportunities
type PageInfoResult struct {
	Page          *domain.PageRecord
	IncomingFrom  []string
	HighAuthority bool
	LowAuthority  bool
	LinkStarved   bool
	Inbound       []domain.LinkSuggestion // suggestions targeting the page
	Outbound      []domain.LinkSuggestion // suggestions placed on the page
	Message       string
}

// PageInfoCommand looks up a single page by url
type PageInfoCommand struct {
	pipeline *Pipeline
	URL      string
}

// NewPageInfoCommand creates a new PageInfoCommand
func NewPageInfoCommand(p *Pipeline, url string) *PageInfoCommand {
	return &PageInfoCommand{pipeline: p, URL: url}
}

// Validate checks if the lookup is valid
func (c *PageInfoCommand) Validate() error {
	return application.ValidateRequired("url", c.URL)
}

// Execute runs the page info command
func (c *PageInfoCommand) Execute(ctx context.Context) (*PageInfoResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	suggested, err := NewSuggestCommand(c.pipeline).Execute(ctx)
	if err != nil {
		return nil, err
	}

	url := strings.TrimPrefix(domain.NormalizeURL(c.URL), "/")
	page, ok := suggested.Index.Get(url)
	if !ok {
		return nil, fmt.Errorf("page %q: %w", url, application.ErrPageNotFound)
	}

	result := &PageInfoResult{
		Page:          page,
		IncomingFrom:  suggested.Index.Incoming()[url].Sorted(),
		HighAuthority: suggested.Classification.IsHigh(url),
		LowAuthority:  suggested.Classification.IsLow(url),
		LinkStarved:   suggested.Classification.IsStarved(url),
	}
	for _, s := range suggested.Suggestions {
		if s.Target.URL == url {
			result.Inbound = append(result.Inbound, s)
		}
		if s.Source.URL == url {
			result.Outbound = append(result.Outbound, s)
		}
	}
	result.Message = fmt.Sprintf("%s: %d incoming links, %d inbound and %d outbound suggestions",
		url, len(result.IncomingFrom), len(result.Inbound), len(result.Outbound))

	return result, nil
}

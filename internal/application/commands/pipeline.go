package commands

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"seolink/internal/application"
	"seolink/internal/domain"
	"seolink/internal/logger"
	"seolink/internal/ports"
)

// Pipeline carries the collaborators shared by every linking command
type Pipeline struct {
	Store      ports.PageStore
	Extractors ports.ExtractorResolver
	Analytics  ports.AnalyticsSource // optional
	Resolver   *domain.URLResolver
	Keywords   *domain.KeywordExtractor
	Authority  domain.AuthorityPolicy
	Ranking    domain.RankPolicy
	Logger     *log.Logger
	Now        func() time.Time
}

// NewPipeline creates a pipeline with default policies
func NewPipeline(store ports.PageStore, extractors ports.ExtractorResolver, analytics ports.AnalyticsSource) *Pipeline {
	return &Pipeline{
		Store:      store,
		Extractors: extractors,
		Analytics:  analytics,
		Resolver:   domain.NewURLResolver(domain.DefaultLegacySlugs),
		Keywords:   domain.NewKeywordExtractor(domain.DefaultMaxKeywords, domain.DefaultStopWords),
		Authority:  domain.DefaultAuthorityPolicy(),
		Ranking:    domain.DefaultRankPolicy(),
	}
}

// Validate checks the pipeline has what every command needs
func (p *Pipeline) Validate() error {
	if p == nil || p.Store == nil {
		return &application.ValidationError{Field: "store", Message: "page store is required"}
	}
	if p.Extractors == nil {
		return &application.ValidationError{Field: "extractors", Message: "extractor resolver is required"}
	}
	return nil
}

func (p *Pipeline) log() *log.Logger {
	if p.Logger == nil {
		return logger.Discard()
	}
	return p.Logger
}

func (p *Pipeline) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

func (p *Pipeline) resolver() *domain.URLResolver {
	if p.Resolver == nil {
		return domain.NewURLResolver(domain.DefaultLegacySlugs)
	}
	return p.Resolver
}

func (p *Pipeline) keywords() *domain.KeywordExtractor {
	if p.Keywords == nil {
		return domain.NewKeywordExtractor(domain.DefaultMaxKeywords, domain.DefaultStopWords)
	}
	return p.Keywords
}

// NewRun starts a result with a fresh run id
func (p *Pipeline) NewRun() *domain.RunResult {
	return domain.NewRunResult(uuid.New().String(), p.now())
}

package ports

import "seolink/internal/domain"

// ReportWriter persists a run report
type ReportWriter interface {
	Write(report domain.Report) error
}

package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRunResult_ReportBounds(t *testing.T) {
	r := NewRunResult("run-1", time.Now())
	for i := 0; i < 150; i++ {
		file := fmt.Sprintf("page-%03d.tsx", i)
		r.RecordAdded(file, file, []AddedLink{{Target: "a"}, {Target: "b"}})
		r.RecordSkipped(file, file, SkipNoLocation)
	}
	for i := 0; i < 120; i++ {
		r.RecordError(fmt.Sprintf("broken-%d.tsx", i), errors.New("permission denied"))
	}

	rep := r.Report(100, time.Now())

	if len(rep.Added) != 100 {
		t.Errorf("expected 100 added entries, got %d", len(rep.Added))
	}
	if len(rep.Skipped) != 100 {
		t.Errorf("expected 100 skipped entries, got %d", len(rep.Skipped))
	}
	if len(rep.Errors) != 120 {
		t.Errorf("expected all 120 errors, got %d", len(rep.Errors))
	}
	if rep.Summary.PagesUpdated != 150 {
		t.Errorf("expected summary to count all 150 updated pages, got %d", rep.Summary.PagesUpdated)
	}
	if rep.Summary.LinksAdded != 300 {
		t.Errorf("expected 300 links, got %d", rep.Summary.LinksAdded)
	}
	if rep.RunID != "run-1" {
		t.Errorf("expected run id run-1, got %s", rep.RunID)
	}
	if rep.Added[0].File != "page-000.tsx" {
		t.Errorf("expected entries in record order, got %s first", rep.Added[0].File)
	}
}

func TestRunResult_ReportUnbounded(t *testing.T) {
	r := NewRunResult("run-2", time.Now())
	r.RecordSkipped("a.tsx", "a", SkipAlreadyLinked)

	rep := r.Report(0, time.Now())
	if len(rep.Skipped) != 1 || rep.Skipped[0].Reason != SkipAlreadyLinked {
		t.Errorf("unexpected skipped list: %+v", rep.Skipped)
	}
	if rep.Added == nil || rep.Errors == nil {
		t.Error("empty lists should serialize as [] not null")
	}
}

func TestContentIndex_Incoming(t *testing.T) {
	a := &PageRecord{URL: "a", OutgoingLinks: LinkSet{"b": {}, "c": {}}}
	b := &PageRecord{URL: "b", OutgoingLinks: LinkSet{"c": {}}}
	c := &PageRecord{URL: "c", OutgoingLinks: LinkSet{}}
	dup := &PageRecord{URL: "a", SourcePath: "other/a.tsx", OutgoingLinks: LinkSet{"b": {}}}

	idx := NewContentIndex([]*PageRecord{c, a, b, dup})

	if idx.Len() != 3 {
		t.Fatalf("expected 3 pages, got %d", idx.Len())
	}
	if idx.IncomingCount("c") != 2 {
		t.Errorf("expected 2 incoming for c, got %d", idx.IncomingCount("c"))
	}
	if idx.IncomingCount("b") != 1 {
		t.Errorf("expected duplicate page to be ignored, got %d incoming for b", idx.IncomingCount("b"))
	}
	if idx.IncomingCount("a") != 0 {
		t.Errorf("expected 0 incoming for a, got %d", idx.IncomingCount("a"))
	}

	pages := idx.Pages()
	if pages[0].URL != "a" || pages[2].URL != "c" {
		t.Errorf("expected pages ordered by url, got %s..%s", pages[0].URL, pages[2].URL)
	}
	if got, _ := idx.Get("a"); got.SourcePath != "" {
		t.Errorf("expected first page for url a to win, got %s", got.SourcePath)
	}
}

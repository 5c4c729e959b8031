package filesystem

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func setupTestSite(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	files := map[string]string{
		"index.tsx":                               "<h1>Home</h1>",
		"inventory-guide/index.tsx":               "<h1>Guide</h1>",
		"glossary/asset-tracking/index.tsx":       "<h1>Asset tracking</h1>",
		"pricing.html":                            "<h1>Pricing</h1>",
		"blog/post.jsx":                           "<h1>Post</h1>",
		"_app.tsx":                                "app",
		"404.tsx":                                 "missing",
		"template.tsx":                            "template",
		"_draft.tsx":                              "draft",
		"components/Header.tsx":                   "component",
		"blog/data/export.tsx":                    "data",
		".next/cache.tsx":                         "cache",
		"notes.md":                                "not a page",
		"glossary/asset-tracking/__tests__/x.tsx": "test",
	}

	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}

	return root
}

func TestStore_List(t *testing.T) {
	root := setupTestSite(t)
	store := NewStore(root, DefaultScanOptions())

	got, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{
		"blog/post.jsx",
		"glossary/asset-tracking/index.tsx",
		"index.tsx",
		"inventory-guide/index.tsx",
		"pricing.html",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestStore_ListCustomExtensions(t *testing.T) {
	root := setupTestSite(t)
	opts := DefaultScanOptions()
	opts.Extensions = []string{".HTML"}

	got, err := NewStore(root, opts).List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0] != "pricing.html" {
		t.Errorf("expected only pricing.html, got %v", got)
	}
}

func TestStore_ListMissingRoot(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist"), DefaultScanOptions())

	got, err := store.List()
	if err != nil {
		t.Fatalf("expected no error for missing root, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
	if store.Exists() {
		t.Error("expected Exists to be false")
	}
}

func TestStore_ListRootIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "page.tsx")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewStore(file, DefaultScanOptions()).List()
	if err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("expected not a directory error, got %v", err)
	}
}

func TestStore_ReadWrite(t *testing.T) {
	root := setupTestSite(t)
	store := NewStore(root, DefaultScanOptions())

	text, err := store.Read("inventory-guide/index.tsx")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if text != "<h1>Guide</h1>" {
		t.Errorf("unexpected content: %q", text)
	}

	if err := store.Write("inventory-guide/index.tsx", text+"\n<p>more</p>"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "inventory-guide", "index.tsx"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<h1>Guide</h1>\n<p>more</p>" {
		t.Errorf("unexpected content after write: %q", data)
	}

	if _, err := store.Read("missing.tsx"); err == nil {
		t.Error("expected error reading missing page")
	}
}

func TestNewStore_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	store := NewStore("~/site/pages", DefaultScanOptions())
	if store.Root() != filepath.Join(home, "site/pages") {
		t.Errorf("expected root under home, got %s", store.Root())
	}
}

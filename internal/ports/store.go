package ports

// PageStore defines the interface for reading and rewriting page sources
type PageStore interface {
	// List returns every page source path relative to the store root, slash separated.
	// A missing root yields an empty list.
	List() ([]string, error)

	// Read returns the full text of a page
	Read(path string) (string, error)

	// Write replaces the full text of a page
	Write(path, text string) error
}

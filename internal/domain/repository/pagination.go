// Package repository defines the interfaces for the persistence layer.
package repository

// Sort directions accepted by paginated queries. Services normalize any other
// caller-supplied value to SortAsc before the query reaches a repository.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// PageQuery describes one page of a listing after normalization by the
// service layer: Page is zero-based, Size is positive and SortBy is a logical
// field name taken from the entity's whitelist, never raw caller input.
type PageQuery struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

// Offset returns the number of rows to skip for this page.
func (q PageQuery) Offset() int {
	return q.Page * q.Size
}

// Package usecase contains the application-specific business rules.
package usecase

// ListQuery carries raw caller-supplied paging values. Services normalize it
// before touching storage: a negative page becomes 0, a non-positive size
// becomes the default page size, an unknown sort key becomes the entity's id
// field and any direction other than a case-insensitive "DESC" becomes "ASC".
type ListQuery struct {
	Page    int    `json:"page"`
	Size    int    `json:"size"`
	SortBy  string `json:"sortBy"`
	SortDir string `json:"sortDir"`
}

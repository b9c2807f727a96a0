// Package entity contains the core business objects of the project.
package entity

// Category groups products under a unique, human-readable name.
// A category cannot be deleted while it still owns products.
type Category struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// CategorySortableFields is the whitelist of logical sort keys accepted by
// paginated category listings. Anything else falls back to DefaultCategorySort.
var CategorySortableFields = map[string]struct{}{
	"categoryId":   {},
	"categoryName": {},
}

// DefaultCategorySort is the fallback sort key for category listings.
const DefaultCategorySort = "categoryId"

package entity

// Product is an item that can be reviewed. Its name is unique across all
// products and it always belongs to an existing category.
type Product struct {
	ProductID          int64  `json:"productId"`
	ProductName        string `json:"productName"`
	ProductDescription string `json:"productDescription"`
	CategoryID         int64  `json:"categoryId"`
}

// ProductSortableFields is the whitelist of logical sort keys accepted by
// paginated product listings.
var ProductSortableFields = map[string]struct{}{
	"productId":          {},
	"productName":        {},
	"productDescription": {},
}

// DefaultProductSort is the fallback sort key for product listings.
const DefaultProductSort = "productId"

package entity

// Review is a rated opinion about a product. The email identifies the author
// and is stamped from the verified token, never from client input. A given
// author may review a given product at most once.
type Review struct {
	ReviewID   int64  `json:"reviewId"`
	Email      string `json:"email"`
	ProductID  int64  `json:"productId"`
	ReviewText string `json:"reviewText"`
	Rating     int    `json:"rating"`
}

// ReviewSortableFields is the whitelist of logical sort keys accepted by
// paginated review listings.
var ReviewSortableFields = map[string]struct{}{
	"reviewId":   {},
	"email":      {},
	"reviewText": {},
	"rating":     {},
}

// DefaultReviewSort is the fallback sort key for review listings.
const DefaultReviewSort = "reviewId"

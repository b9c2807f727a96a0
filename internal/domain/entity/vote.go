package entity

// Vote marks a review as useful or not. The email identifies the voter and is
// stamped from the verified token. A given voter may vote on a given review at
// most once. Votes have no dependent children.
type Vote struct {
	VoteID   int64  `json:"voteId"`
	Email    string `json:"email"`
	ReviewID int64  `json:"reviewId"`
	Useful   bool   `json:"useful"`
}

// VoteSortableFields is the whitelist of logical sort keys accepted by
// paginated vote listings.
var VoteSortableFields = map[string]struct{}{
	"voteId": {},
	"email":  {},
	"useful": {},
}

// DefaultVoteSort is the fallback sort key for vote listings.
const DefaultVoteSort = "voteId"

package model

// VoteModel is the GORM-specific struct for the 'votes' table.
// The composite unique index backs the one-vote-per-(review,author) rule
// against concurrent creators.
type VoteModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Email    string `gorm:"size:255;not null;uniqueIndex:idx_votes_review_email"`
	ReviewID int64  `gorm:"not null;index;uniqueIndex:idx_votes_review_email"`
	Useful   bool   `gorm:"not null"`

	Review *ReviewModel `gorm:"foreignKey:ReviewID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (VoteModel) TableName() string {
	return "votes"
}

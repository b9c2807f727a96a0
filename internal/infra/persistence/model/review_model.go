package model

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// The composite unique index backs the one-review-per-(product,author) rule
// against concurrent creators.
type ReviewModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Email      string `gorm:"size:255;not null;uniqueIndex:idx_reviews_product_email"`
	ProductID  int64  `gorm:"not null;index;uniqueIndex:idx_reviews_product_email"`
	ReviewText string `gorm:"size:1000"`
	Rating     int    `gorm:"not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// Package model contains the GORM-specific structs mapped to database tables.
package model

// CategoryModel is the GORM-specific struct for the 'categories' table.
// The unique index on the name backs the service-level uniqueness check
// against concurrent creators.
type CategoryModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:category_name;size:50;not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

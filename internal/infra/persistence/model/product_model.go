package model

// ProductModel is the GORM-specific struct for the 'products' table.
// The foreign key deliberately restricts deletion: the service layer owns the
// "no delete while children exist" rule, so the schema must never cascade.
type ProductModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"column:product_name;size:50;not null;uniqueIndex"`
	Description string `gorm:"column:product_description;size:1000"`
	CategoryID  int64  `gorm:"not null;index"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

package model

// UserAppModel is the GORM-specific struct for the 'users_app' table.
// Email is unique and never updated after insert.
type UserAppModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Email    string `gorm:"size:255;not null;uniqueIndex"`
	Name     string `gorm:"size:50"`
	Lastname string `gorm:"size:50"`
}

// TableName explicitly sets the table name for GORM.
func (UserAppModel) TableName() string {
	return "users_app"
}

package models

// User is the entity served by the BFF. The dataset is read-only at
// runtime; there is no mutation path.
type User struct {
	ID    string `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null"`
	Email string `json:"email" gorm:"uniqueIndex;not null"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

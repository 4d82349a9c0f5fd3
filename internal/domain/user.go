package domain

import "time"

// User is an account holder. The identifier is database-generated
// and the email is unique; both invariants are owned by the storage schema,
// with the service layer re-checking them on every mutation.
type User struct {
	ID        int64     `json:"id"        gorm:"primaryKey"`
	FirstName string    `json:"firstName" gorm:"column:first_name;size:50;not null"`
	LastName  string    `json:"lastName"  gorm:"column:last_name;size:50;not null"`
	Email     string    `json:"email"     gorm:"size:255;not null;uniqueIndex:idx_users_email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName pins the table name so the schema does not depend on gorm's
// pluralization rules.
func (User) TableName() string { return "users" }

package model

import "time"

// UsersCollection is where user identities are stored.
const UsersCollection = "users"

// User represents an authenticated user in the system.
type User struct {
	ID           string     `json:"id" gorm:"type:char(36);primaryKey" bson:"id"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null" bson:"email"`
	FullName     string     `json:"full_name" gorm:"size:255;not null" bson:"full_name"`
	PasswordHash string     `json:"-" gorm:"size:255;not null" bson:"password_hash"` // Never expose in JSON
	WeddingDate  *time.Time `json:"wedding_date" bson:"wedding_date,omitempty"`
	PartnerName  *string    `json:"partner_name" gorm:"size:255" bson:"partner_name,omitempty"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
}

// TableName pins the GORM table to the users collection.
func (User) TableName() string { return UsersCollection }

// Profile holds the optional fields supplied at registration.
type Profile struct {
	FullName    string
	WeddingDate *time.Time
	PartnerName *string
}

package model

import "time"

// swagger:model User
type User struct {
	UUIDBase
	// Nullable so locally registered accounts do not collide on the
	// unique index.
	FirebaseUID *string   `gorm:"size:128;uniqueIndex" json:"firebaseUid,omitempty"`
	Email       string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FullName    string    `gorm:"size:255;not null" json:"fullName"`
	Password    string    `gorm:"size:100" json:"-"`
	AvatarURL   string    `gorm:"size:512" json:"avatarUrl,omitempty"`
	LastLogin   time.Time `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}

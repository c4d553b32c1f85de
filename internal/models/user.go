package models

import "time"

// User is an account that owns tasks. PasswordHash holds a bcrypt digest and
// is never serialised.
type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" bson:"name" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" bson:"email" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" bson:"password_hash" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false" bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false" bson:"updated_at" json:"updated_at"`
}

package model

import (
	"time"
)

type User struct {
	ID              uint64    `gorm:"primaryKey"`
	TokenIdentifier string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_token_identifier" json:"tokenIdentifier"`
	Username        string    `gorm:"type:varchar(100);not null;index:idx_username" json:"username"`
	Email           string    `gorm:"type:varchar(255);not null;index:idx_email" json:"email"`
	Name            string    `gorm:"type:varchar(100)" json:"name"`
	AvatarURL       string    `gorm:"type:varchar(512)" json:"avatarUrl"`
	Bio             string    `gorm:"type:varchar(500)" json:"bio"`
	FollowersCount  int       `gorm:"not null;default:0" json:"followersCount"`
	FollowingCount  int       `gorm:"not null;default:0" json:"followingCount"`
	LastActiveAt    time.Time `json:"lastActiveAt"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

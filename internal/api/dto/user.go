package dto

import "time"

// UserProfileResp 用户对外资料
type UserProfileResp struct {
	ID             uint64    `json:"id"`
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	AvatarURL      string    `json:"avatarUrl"`
	Bio            string    `json:"bio"`
	FollowersCount int       `json:"followersCount"`
	FollowingCount int       `json:"followingCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UpdateProfileReq 资料更新请求
type UpdateProfileReq struct {
	Name      string `json:"name" binding:"omitempty,max=100"`
	Bio       string `json:"bio" binding:"omitempty,max=500"`
	AvatarURL string `json:"avatarUrl" binding:"omitempty,max=512,url"`
}

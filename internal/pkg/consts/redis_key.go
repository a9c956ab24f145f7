package consts

const (
	UserFollowerCountKey  = "user:follower:count:"
	UserFollowingCountKey = "user:following:count:"
	PostLikeKey           = "post:like:"
)

const (
	UserSyncLock = "user:sync:lock:"
)

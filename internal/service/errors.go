package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
	ServiceUnavailable  = 503
)

var (
	ErrParamInvalid     = errors.New("invalid parameters")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserSyncConflict = errors.New("identity sync in progress, please retry")
	ErrPostNotFound     = errors.New("post not found")
	ErrPostNotPublished = errors.New("post is not published")
	ErrPostAlreadyLive  = errors.New("post is already published")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrCommentForbidden = errors.New("only the post author can moderate comments")
	ErrUserFollowSelf   = errors.New("cannot follow yourself")
	ErrUserFollowLimit  = errors.New("following limit reached")
	ErrNotPostOwner     = errors.New("only the author can modify this post")
	ErrFileNotSupported = errors.New("unsupported file type")
	ErrFileTooLarge     = errors.New("file exceeds size limit")
	ErrScheduleInPast   = errors.New("scheduled time must be in the future")
	ErrAIConfig         = errors.New("AI service configuration error. Please try again later.")
	ErrAIThrottled      = errors.New("AI service is temporarily unavailable due to high demand. Please try again later.")
	UnauthorizedError   = errors.New("unauthorized")
	UnExpectedError     = errors.New("unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrUserNotFound:     NotFound,
	ErrUserSyncConflict: Conflict,
	ErrPostNotFound:     NotFound,
	ErrPostNotPublished: BadRequest,
	ErrPostAlreadyLive:  Conflict,
	ErrCommentNotFound:  NotFound,
	ErrCommentForbidden: Forbidden,
	ErrUserFollowSelf:   BadRequest,
	ErrUserFollowLimit:  BadRequest,
	ErrNotPostOwner:     Forbidden,
	ErrFileNotSupported: BadRequest,
	ErrFileTooLarge:     BadRequest,
	ErrScheduleInPast:   BadRequest,
	ErrAIConfig:         ServiceUnavailable,
	ErrAIThrottled:      ServiceUnavailable,
	UnauthorizedError:   Unauthorized,
	UnExpectedError:     InternalServerError,
}

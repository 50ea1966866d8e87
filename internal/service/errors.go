package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	TooManyRequests     = 429
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("invalid parameters")
	ErrUserNotFound            = errors.New("user not found")
	ErrUserExist               = errors.New("user already exists")
	ErrUserEmailExist          = errors.New("email already registered")
	ErrPasswordIncorrect       = errors.New("incorrect password")
	ErrMissingLoginCredentials = errors.New("missing login credentials")
	ErrConnectionSelf          = errors.New("cannot send a connection request to yourself")
	ErrConnectionExist         = errors.New("connection already exists")
	ErrConnectionNotFound      = errors.New("connection not found")
	ErrNotConnectionParty      = errors.New("not a party to this connection")
	ErrPostNotFound            = errors.New("post not found")
	ErrClipNotFound            = errors.New("clip not found")
	ErrCommentNotFound         = errors.New("comment not found")
	ErrActionDuplicate         = errors.New("duplicate action")
	ErrActionNotFound          = errors.New("nothing to undo")
	ErrGroupNotFound           = errors.New("group not found")
	ErrGroupMemberExist        = errors.New("already a member of this group")
	ErrGroupNotMember          = errors.New("not a member of this group")
	ErrCampaignNotFound        = errors.New("campaign not found or not active")
	ErrPledgeAmountInvalid     = errors.New("pledge amount must be greater than zero")
	ErrNotificationNotFound    = errors.New("notification not found")
	ErrConversation            = errors.New("conversation error")
	ErrStreamNotFound          = errors.New("live stream not found")
	ErrStreamEnded             = errors.New("live stream has ended")
	ErrErosProfileNotFound     = errors.New("dating profile not found")
	ErrTargetUserInvalid       = errors.New("target user invalid")
	ErrFileNotSupported        = errors.New("file type not supported")
	ErrSuggestCooldown         = errors.New("suggestions requested too frequently")
	ErrSuggestUnavailable      = errors.New("suggestions are unavailable right now")
	ForbiddenError             = errors.New("not allowed to act on this resource")
	UnauthorizedError          = errors.New("insufficient permissions")
	UnExpectedError            = errors.New("something went wrong, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserExist:               BadRequest,
	ErrUserEmailExist:          BadRequest,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrConnectionSelf:          BadRequest,
	ErrConnectionExist:         BadRequest,
	ErrConnectionNotFound:      NotFound,
	ErrNotConnectionParty:      Forbidden,
	ErrPostNotFound:            NotFound,
	ErrClipNotFound:            NotFound,
	ErrCommentNotFound:         NotFound,
	ErrActionDuplicate:         BadRequest,
	ErrActionNotFound:          BadRequest,
	ErrGroupNotFound:           NotFound,
	ErrGroupMemberExist:        BadRequest,
	ErrGroupNotMember:          BadRequest,
	ErrCampaignNotFound:        NotFound,
	ErrPledgeAmountInvalid:     BadRequest,
	ErrNotificationNotFound:    NotFound,
	ErrConversation:            BadRequest,
	ErrStreamNotFound:          NotFound,
	ErrStreamEnded:             BadRequest,
	ErrErosProfileNotFound:     NotFound,
	ErrTargetUserInvalid:       BadRequest,
	ErrFileNotSupported:        BadRequest,
	ErrSuggestCooldown:         TooManyRequests,
	ErrSuggestUnavailable:      InternalServerError,
	ForbiddenError:             Forbidden,
	UnauthorizedError:          Unauthorized,
	UnExpectedError:            InternalServerError,
}

package comment

import (
	"fmt"

	"github.com/goto/engagement/domain"
)

var (
	ErrCommentNotFound       = fmt.Errorf("%w: comment not found", domain.ErrNotFound)
	ErrParentNotFound        = fmt.Errorf("%w: parent comment not found", domain.ErrNotFound)
	ErrDepthExceeded         = fmt.Errorf("%w: maximum comment depth exceeded", domain.ErrValidation)
	ErrInvalidContent        = fmt.Errorf("%w: comment content must be between 1 and %d characters", domain.ErrValidation, domain.MaxCommentLength)
	ErrTooManyMentions       = fmt.Errorf("%w: a comment can mention at most %d users", domain.ErrValidation, domain.MaxMentionedUsers)
	ErrEmptyAuthor           = fmt.Errorf("%w: comment author (\"author_id\") can't be empty", domain.ErrValidation)
	ErrEmptyPostID           = fmt.Errorf("%w: comment post (\"post_id\") can't be empty", domain.ErrValidation)
	ErrEmptySearchQuery      = fmt.Errorf("%w: search query can't be empty", domain.ErrValidation)
	ErrEmptyModeration       = fmt.Errorf("%w: nothing to moderate", domain.ErrValidation)
	ErrPermissionDenied      = fmt.Errorf("%w: only the author can edit a comment", domain.ErrPermissionDenied)
	ErrHasReplies            = fmt.Errorf("%w: comment received new replies while being deleted", domain.ErrConflict)
	ErrDuplicateComment      = fmt.Errorf("%w: comment already exists", domain.ErrConflict)
	ErrInvalidHoldExpression = fmt.Errorf("%w: invalid hold expression", domain.ErrValidation)
)

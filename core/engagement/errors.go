package engagement

import (
	"fmt"

	"github.com/goto/engagement/domain"
)

var (
	ErrCommentsDisabled  = fmt.Errorf("%w: comments are disabled on this target", domain.ErrPermissionDenied)
	ErrReactionsDisabled = fmt.Errorf("%w: reactions are disabled on this target", domain.ErrPermissionDenied)
	ErrPermissionDenied  = fmt.Errorf("%w: actor is not allowed to perform this action", domain.ErrPermissionDenied)
	ErrEmptyActor        = fmt.Errorf("%w: actor id can't be empty", domain.ErrValidation)
)

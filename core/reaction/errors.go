package reaction

import (
	"fmt"

	"github.com/goto/engagement/domain"
)

var (
	ErrInvalidTargetType   = fmt.Errorf("%w: invalid target type", domain.ErrValidation)
	ErrInvalidReactionType = fmt.Errorf("%w: invalid reaction type", domain.ErrValidation)
	ErrEmptyUserID         = fmt.Errorf("%w: user id can't be empty", domain.ErrValidation)
	ErrEmptyTargetID       = fmt.Errorf("%w: target id can't be empty", domain.ErrValidation)
	ErrReactionNotFound    = fmt.Errorf("%w: reaction not found", domain.ErrNotFound)
	ErrConcurrentReaction  = fmt.Errorf("%w: reaction was changed concurrently", domain.ErrConflict)
)

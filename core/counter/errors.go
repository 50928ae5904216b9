package counter

import (
	"fmt"

	"github.com/goto/engagement/domain"
)

var (
	ErrNegativeValue = fmt.Errorf("%w: counter value can't be negative", domain.ErrValidation)
	ErrEmptyKeys     = fmt.Errorf("%w: at least one counter key is required", domain.ErrValidation)
)

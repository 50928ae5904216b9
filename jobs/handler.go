package jobs

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	defaults "github.com/mcuadros/go-defaults"
	"github.com/mitchellh/mapstructure"

	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/pkg/log"
)

type Type string

const (
	TypeReconcileCounters Type = "reconcile_counters"
)

// Config holds the raw options of a job as read from the config file.
type Config map[string]interface{}

// Decode fills v with the default values of its fields overridden by c.
func (c Config) Decode(v interface{}) error {
	defaults.SetDefaults(v)
	return mapstructure.Decode(c, v)
}

type Job struct {
	Config Config `mapstructure:"config" yaml:"config"`
}

//go:generate mockery --name=commentService --exported --with-expecter
type commentService interface {
	TreeStats(context.Context) (*domain.CommentTreeStats, error)
}

//go:generate mockery --name=reactionService --exported --with-expecter
type reactionService interface {
	TargetLikes(context.Context) ([]*domain.TargetLikes, error)
}

//go:generate mockery --name=counterService --exported --with-expecter
type counterService interface {
	Get(ctx context.Context, keys []domain.CounterKey) (domain.CounterValues, error)
	CompareAndSet(ctx context.Context, key domain.CounterKey, current, value int64) (bool, error)
}

type handler struct {
	logger          log.Logger
	commentService  commentService
	reactionService reactionService
	counterService  counterService
	validator       *validator.Validate
}

func NewHandler(
	logger log.Logger,
	commentService commentService,
	reactionService reactionService,
	counterService counterService,
	validator *validator.Validate,
) *handler {
	return &handler{
		logger:          logger,
		commentService:  commentService,
		reactionService: reactionService,
		counterService:  counterService,
		validator:       validator,
	}
}

func (h *handler) decode(jobType Type, c Config, v interface{}) error {
	if err := c.Decode(v); err != nil {
		return fmt.Errorf("invalid config for %s job: %w", jobType, err)
	}
	if err := h.validator.Struct(v); err != nil {
		return fmt.Errorf("invalid config for %s job: %w", jobType, err)
	}
	return nil
}

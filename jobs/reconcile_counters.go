package jobs

import (
	"context"
	"fmt"

	"github.com/goto/salt/audit"

	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/pkg/log"
	"github.com/goto/engagement/pkg/slices"
)

type ReconcileCountersConfig struct {
	DryRun    bool `mapstructure:"dry_run"`
	BatchSize int  `mapstructure:"batch_size" default:"500" validate:"min=1"`
}

// ReconcileCounters recomputes replies_count, comments_count and likes_count
// from the comment tree and the reaction ledger and repairs the counters
// that drifted. Counters are read before the truth used to repair them is
// computed, and each one is only replaced if it still holds the value read,
// so increments landing while the job runs are kept. Posts whose comments
// are all gone have no recomputed value and keep their counter.
func (h *handler) ReconcileCounters(ctx context.Context, c Config) error {
	var cfg ReconcileCountersConfig
	if err := h.decode(TypeReconcileCounters, c, &cfg); err != nil {
		return err
	}
	ctx = log.WithValue(audit.WithActor(ctx, domain.SystemActorName), "job", string(TypeReconcileCounters))

	h.logger.Info(ctx, "running reconcile counters job", "dry_run", cfg.DryRun, "batch_size", cfg.BatchSize)

	expected, err := h.expectedCounters(ctx)
	if err != nil {
		return err
	}

	keys := make([]domain.CounterKey, 0, len(expected))
	for k := range expected {
		keys = append(keys, k)
	}

	drifted := domain.CounterValues{}
	for _, batch := range slices.GenericsChunkSlice(keys, cfg.BatchSize) {
		current, err := h.counterService.Get(ctx, batch)
		if err != nil {
			return fmt.Errorf("reading counters: %w", err)
		}
		for _, k := range batch {
			if current.Of(k) == expected[k] {
				continue
			}
			h.logger.Info(ctx, "counter drift", "key", k.String(), "stored", current.Of(k), "expected", expected[k])
			drifted[k] = current.Of(k)
		}
	}

	if cfg.DryRun || len(drifted) == 0 {
		h.logger.Info(ctx, "reconcile counters job finished", "checked", len(keys), "drifted", len(drifted), "fixed", 0)
		return nil
	}

	// recomputed after the drifted counters were read
	expected, err = h.expectedCounters(ctx)
	if err != nil {
		return err
	}

	var fixed, moved int
	for k, stored := range drifted {
		value, exists := expected[k]
		if !exists || value == stored {
			continue
		}

		swapped, err := h.counterService.CompareAndSet(ctx, k, stored, value)
		if err != nil {
			return fmt.Errorf("writing counter %q: %w", k, err)
		}
		if !swapped {
			h.logger.Debug(ctx, "counter moved while reconciling, left for the next run", "key", k.String())
			moved++
			continue
		}
		fixed++
	}

	h.logger.Info(ctx, "reconcile counters job finished", "checked", len(keys), "drifted", len(drifted), "fixed", fixed, "moved", moved)
	return nil
}

func (h *handler) expectedCounters(ctx context.Context) (domain.CounterValues, error) {
	stats, err := h.commentService.TreeStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("computing comment tree stats: %w", err)
	}
	likes, err := h.reactionService.TargetLikes(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting target likes: %w", err)
	}

	expected := domain.CounterValues{}
	for commentID, count := range stats.RepliesByComment {
		expected[domain.RepliesCountKey(commentID)] = count
	}
	for postID, count := range stats.CommentsByPost {
		expected[domain.CommentsCountKey(postID)] = count
	}
	for _, l := range likes {
		expected[domain.LikesCountKey(l.Target.Type, l.Target.ID)] = l.Count
	}
	return expected, nil
}

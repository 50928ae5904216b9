package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goto/engagement/core/reaction"
	"github.com/goto/engagement/domain"
)

// ReactionRepository is an in process reaction ledger. Upsert holds the
// ledger lock while apply runs, so requests on the same key are serialized.
type ReactionRepository struct {
	mu        sync.RWMutex
	reactions map[domain.ReactionKey]*domain.Reaction
}

func NewReactionRepository() *ReactionRepository {
	return &ReactionRepository{reactions: map[domain.ReactionKey]*domain.Reaction{}}
}

func (r *ReactionRepository) Upsert(_ context.Context, key domain.ReactionKey, apply func(*domain.Reaction) domain.ReactionAction) (*domain.Reaction, domain.ReactionAction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if stored, exists := r.reactions[key]; exists {
		current := *stored
		action := apply(&current)
		if action == domain.ReactionActionNotFound {
			return &current, action, nil
		}

		current.UpdatedAt = now
		r.reactions[key] = &current
		result := current
		return &result, action, nil
	}

	fresh := &domain.Reaction{
		UserID:     key.UserID,
		TargetID:   key.Target.ID,
		TargetType: key.Target.Type,
	}
	action := apply(fresh)
	if !fresh.IsActive {
		return nil, action, nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, "", err
	}
	fresh.ID = id.String()
	fresh.CreatedAt = now
	fresh.UpdatedAt = now
	r.reactions[key] = fresh

	result := *fresh
	return &result, action, nil
}

func (r *ReactionRepository) Get(_ context.Context, key domain.ReactionKey) (*domain.Reaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.reactions[key]
	if !exists {
		return nil, reaction.ErrReactionNotFound
	}
	result := *stored
	return &result, nil
}

func (r *ReactionRepository) Summary(_ context.Context, target domain.ReactionTarget) (*domain.ReactionSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summary := domain.NewReactionSummary()
	for key, stored := range r.reactions {
		if key.Target == target && stored.IsActive {
			summary.Add(stored.ReactionType, 1)
		}
	}
	return summary, nil
}

func (r *ReactionRepository) List(_ context.Context, filter domain.ListReactionsFilter) ([]*domain.Reaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*domain.Reaction{}
	for _, stored := range r.reactions {
		switch {
		case !stored.IsActive,
			filter.UserID != "" && stored.UserID != filter.UserID,
			filter.TargetID != "" && stored.TargetID != filter.TargetID,
			filter.TargetType != "" && stored.TargetType != filter.TargetType,
			filter.ReactionType != "" && stored.ReactionType != filter.ReactionType,
			!filter.Since.IsZero() && stored.CreatedAt.Before(filter.Since):
			continue
		}
		copied := *stored
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].UpdatedAt.Equal(result[j].UpdatedAt) {
			return result[i].UpdatedAt.After(result[j].UpdatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return paginate(result, filter.Size, filter.Offset), nil
}

func (r *ReactionRepository) Popular(_ context.Context, since time.Time, targetType domain.TargetType, limit int) ([]*domain.PopularTarget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byTarget := map[domain.ReactionTarget]*domain.PopularTarget{}
	users := map[domain.ReactionTarget]map[string]bool{}
	for key, stored := range r.reactions {
		if !stored.IsActive || (targetType != "" && key.Target.Type != targetType) || (!since.IsZero() && stored.CreatedAt.Before(since)) {
			continue
		}
		p, exists := byTarget[key.Target]
		if !exists {
			p = &domain.PopularTarget{TargetID: key.Target.ID, TargetType: key.Target.Type}
			byTarget[key.Target] = p
			users[key.Target] = map[string]bool{}
		}
		p.LikesCount++
		users[key.Target][key.UserID] = true
	}

	popular := make([]*domain.PopularTarget, 0, len(byTarget))
	for target, p := range byTarget {
		p.UniqueUsers = int64(len(users[target]))
		popular = append(popular, p)
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].LikesCount != popular[j].LikesCount {
			return popular[i].LikesCount > popular[j].LikesCount
		}
		return popular[i].TargetID < popular[j].TargetID
	})
	return paginate(popular, limit, 0), nil
}

func (r *ReactionRepository) Stats(_ context.Context, since time.Time, targetType domain.TargetType) ([]*domain.ReactionStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type statKey struct {
		reactionType domain.ReactionType
		targetType   domain.TargetType
	}
	counts := map[statKey]int64{}
	for key, stored := range r.reactions {
		if !stored.IsActive || (targetType != "" && key.Target.Type != targetType) || (!since.IsZero() && stored.CreatedAt.Before(since)) {
			continue
		}
		counts[statKey{stored.ReactionType, key.Target.Type}]++
	}

	stats := make([]*domain.ReactionStat, 0, len(counts))
	for k, count := range counts {
		stats = append(stats, &domain.ReactionStat{ReactionType: k.reactionType, TargetType: k.targetType, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		if stats[i].ReactionType != stats[j].ReactionType {
			return stats[i].ReactionType < stats[j].ReactionType
		}
		return stats[i].TargetType < stats[j].TargetType
	})
	return stats, nil
}

func (r *ReactionRepository) TargetLikes(_ context.Context) ([]*domain.TargetLikes, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := map[domain.ReactionTarget]int64{}
	for key, stored := range r.reactions {
		count := counts[key.Target]
		if stored.IsActive {
			count++
		}
		counts[key.Target] = count
	}

	likes := make([]*domain.TargetLikes, 0, len(counts))
	for target, count := range counts {
		likes = append(likes, &domain.TargetLikes{Target: target, Count: count})
	}
	return likes, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/goto/engagement/core/reaction"
	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/internal/store/postgres/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertAttempts bounds how often Upsert retries after losing an insert
// race on the (user_id, target_id, target_type) key.
const upsertAttempts = 3

type ReactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db}
}

// Upsert locks the ledger row of key, lets apply decide the new state and
// writes it back in the same transaction. A row that doesn't exist yet is
// only inserted when apply activates it.
func (r *ReactionRepository) Upsert(ctx context.Context, key domain.ReactionKey, apply func(*domain.Reaction) domain.ReactionAction) (*domain.Reaction, domain.ReactionAction, error) {
	var (
		result *domain.Reaction
		action domain.ReactionAction
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for attempt := 0; attempt < upsertAttempts; attempt++ {
			var m model.Reaction
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("user_id = ? AND target_id = ? AND target_type = ?", key.UserID, key.Target.ID, string(key.Target.Type)).
				First(&m).Error

			if err == nil {
				current := m.ToDomain()
				action = apply(current)
				if action == domain.ReactionActionNotFound {
					result = current
					return nil
				}

				if err := m.FromDomain(current); err != nil {
					return err
				}
				if err := tx.Model(&m).Select("reaction_type", "is_active", "updated_at").Updates(&m).Error; err != nil {
					return err
				}
				result = m.ToDomain()
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			fresh := &domain.Reaction{
				UserID:     key.UserID,
				TargetID:   key.Target.ID,
				TargetType: key.Target.Type,
			}
			action = apply(fresh)
			if !fresh.IsActive {
				result = nil
				return nil
			}

			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("generating reaction id: %w", err)
			}
			fresh.ID = id.String()
			if err := m.FromDomain(fresh); err != nil {
				return err
			}

			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 1 {
				result = m.ToDomain()
				return nil
			}
			// a concurrent request inserted the row first, lock it and apply
			// the request on top of its state
		}
		return reaction.ErrConcurrentReaction
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, "", reaction.ErrConcurrentReaction
		}
		return nil, "", err
	}

	return result, action, nil
}

func (r *ReactionRepository) Get(ctx context.Context, key domain.ReactionKey) (*domain.Reaction, error) {
	var m model.Reaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND target_id = ? AND target_type = ?", key.UserID, key.Target.ID, string(key.Target.Type)).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reaction.ErrReactionNotFound
		}
		return nil, err
	}

	return m.ToDomain(), nil
}

type reactionTypeCount struct {
	ReactionType string
	Count        int64
}

// Summary counts the active reactions of a target per type. Types without
// active reactions are left out.
func (r *ReactionRepository) Summary(ctx context.Context, target domain.ReactionTarget) (*domain.ReactionSummary, error) {
	var rows []reactionTypeCount
	if err := r.db.WithContext(ctx).
		Model(&model.Reaction{}).
		Select("reaction_type, COUNT(*) AS count").
		Where("target_id = ? AND target_type = ? AND is_active", target.ID, string(target.Type)).
		Group("reaction_type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	summary := domain.NewReactionSummary()
	for _, row := range rows {
		summary.Add(domain.ReactionType(row.ReactionType), row.Count)
	}
	return summary, nil
}

// List returns active reactions matching filter, newest first.
func (r *ReactionRepository) List(ctx context.Context, filter domain.ListReactionsFilter) ([]*domain.Reaction, error) {
	db := r.db.WithContext(ctx).Where("is_active")
	if filter.UserID != "" {
		db = db.Where("user_id = ?", filter.UserID)
	}
	if filter.TargetID != "" {
		db = db.Where("target_id = ?", filter.TargetID)
	}
	if filter.TargetType != "" {
		db = db.Where("target_type = ?", string(filter.TargetType))
	}
	if filter.ReactionType != "" {
		db = db.Where("reaction_type = ?", string(filter.ReactionType))
	}
	if !filter.Since.IsZero() {
		db = db.Where("created_at >= ?", filter.Since)
	}
	if filter.Size > 0 {
		db = db.Limit(filter.Size)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	var models []*model.Reaction
	if err := db.Order("updated_at DESC").Order("id DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	reactions := make([]*domain.Reaction, 0, len(models))
	for _, m := range models {
		reactions = append(reactions, m.ToDomain())
	}
	return reactions, nil
}

type popularTargetRow struct {
	TargetID    string
	TargetType  string
	LikesCount  int64
	UniqueUsers int64
}

// Popular ranks targets by their active reactions created after since. An
// empty targetType ranks every target type.
func (r *ReactionRepository) Popular(ctx context.Context, since time.Time, targetType domain.TargetType, limit int) ([]*domain.PopularTarget, error) {
	db := r.db.WithContext(ctx).
		Model(&model.Reaction{}).
		Select("target_id, target_type, COUNT(*) AS likes_count, COUNT(DISTINCT user_id) AS unique_users").
		Where("is_active")
	if !since.IsZero() {
		db = db.Where("created_at >= ?", since)
	}
	if targetType != "" {
		db = db.Where("target_type = ?", string(targetType))
	}

	var rows []popularTargetRow
	if err := db.Group("target_id, target_type").
		Order("likes_count DESC").
		Order("target_id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	popular := make([]*domain.PopularTarget, 0, len(rows))
	for _, row := range rows {
		popular = append(popular, &domain.PopularTarget{
			TargetID:    row.TargetID,
			TargetType:  domain.TargetType(row.TargetType),
			LikesCount:  row.LikesCount,
			UniqueUsers: row.UniqueUsers,
		})
	}
	return popular, nil
}

type reactionStatRow struct {
	ReactionType string
	TargetType   string
	Count        int64
}

func (r *ReactionRepository) Stats(ctx context.Context, since time.Time, targetType domain.TargetType) ([]*domain.ReactionStat, error) {
	db := r.db.WithContext(ctx).
		Model(&model.Reaction{}).
		Select("reaction_type, target_type, COUNT(*) AS count").
		Where("is_active")
	if !since.IsZero() {
		db = db.Where("created_at >= ?", since)
	}
	if targetType != "" {
		db = db.Where("target_type = ?", string(targetType))
	}

	var rows []reactionStatRow
	if err := db.Group("reaction_type, target_type").
		Order("count DESC").
		Order("reaction_type ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := make([]*domain.ReactionStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, &domain.ReactionStat{
			ReactionType: domain.ReactionType(row.ReactionType),
			TargetType:   domain.TargetType(row.TargetType),
			Count:        row.Count,
		})
	}
	return stats, nil
}

type targetLikesRow struct {
	TargetID   string
	TargetType string
	Count      int64
}

// TargetLikes counts the active reactions of every target in the ledger.
// Targets whose reactions were all withdrawn count zero.
func (r *ReactionRepository) TargetLikes(ctx context.Context) ([]*domain.TargetLikes, error) {
	var rows []targetLikesRow
	if err := r.db.WithContext(ctx).
		Model(&model.Reaction{}).
		Select("target_id, target_type, COUNT(*) FILTER (WHERE is_active) AS count").
		Group("target_id, target_type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	likes := make([]*domain.TargetLikes, 0, len(rows))
	for _, row := range rows {
		likes = append(likes, &domain.TargetLikes{
			Target: domain.ReactionTarget{ID: row.TargetID, Type: domain.TargetType(row.TargetType)},
			Count:  row.Count,
		})
	}
	return likes, nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/goto/engagement/domain"
)

type Reaction struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       string    `gorm:"not null;uniqueIndex:reactions_user_target_key"`
	TargetID     string    `gorm:"not null;uniqueIndex:reactions_user_target_key"`
	TargetType   string    `gorm:"not null;uniqueIndex:reactions_user_target_key"`
	ReactionType string    `gorm:"not null"`
	IsActive     bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Reaction) TableName() string {
	return "reactions"
}

func (m *Reaction) FromDomain(r *domain.Reaction) error {
	if r.ID != "" {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return err
		}
		m.ID = id
	}

	m.UserID = r.UserID
	m.TargetID = r.TargetID
	m.TargetType = string(r.TargetType)
	m.ReactionType = string(r.ReactionType)
	m.IsActive = r.IsActive
	m.CreatedAt = r.CreatedAt
	m.UpdatedAt = r.UpdatedAt

	return nil
}

func (m *Reaction) ToDomain() *domain.Reaction {
	return &domain.Reaction{
		ID:           m.ID.String(),
		UserID:       m.UserID,
		TargetID:     m.TargetID,
		TargetType:   domain.TargetType(m.TargetType),
		ReactionType: domain.ReactionType(m.ReactionType),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

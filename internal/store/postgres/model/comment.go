package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/goto/engagement/domain"
	"github.com/lib/pq"
)

type Comment struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AuthorID       string     `gorm:"not null"`
	PostID         string     `gorm:"not null"`
	ParentID       *uuid.UUID `gorm:"type:uuid"`
	Content        string     `gorm:"not null"`
	Depth          int        `gorm:"not null"`
	ThreadPath     string     `gorm:"not null"`
	IsPinned       bool       `gorm:"not null"`
	PinnedAt       *time.Time
	IsHighlighted  bool `gorm:"not null"`
	HighlightedAt  *time.Time
	IsApproved     bool `gorm:"not null"`
	ModeratedAt    *time.Time
	ModeratedBy    sql.NullString
	IsEdited       bool `gorm:"not null"`
	EditedAt       *time.Time
	MentionedUsers pq.StringArray `gorm:"type:text[]"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
}

func (Comment) TableName() string {
	return "comments"
}

func (m *Comment) FromDomain(c *domain.Comment) error {
	if c.ID != "" {
		id, err := uuid.Parse(c.ID)
		if err != nil {
			return err
		}
		m.ID = id
	}

	if !c.IsRoot() {
		parentID, err := uuid.Parse(*c.ParentID)
		if err != nil {
			return err
		}
		m.ParentID = &parentID
	}

	m.AuthorID = c.AuthorID
	m.PostID = c.PostID
	m.Content = c.Content
	m.Depth = c.Depth
	m.ThreadPath = c.ThreadPath
	m.IsPinned = c.IsPinned
	m.PinnedAt = c.PinnedAt
	m.IsHighlighted = c.IsHighlighted
	m.HighlightedAt = c.HighlightedAt
	m.IsApproved = c.IsApproved
	m.ModeratedAt = c.ModeratedAt
	m.ModeratedBy = sql.NullString{String: c.ModeratedBy, Valid: c.ModeratedBy != ""}
	m.IsEdited = c.IsEdited
	m.EditedAt = c.EditedAt
	m.MentionedUsers = pq.StringArray(c.MentionedUsers)
	if m.MentionedUsers == nil {
		m.MentionedUsers = pq.StringArray{}
	}
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt

	return nil
}

func (m *Comment) ToDomain() *domain.Comment {
	c := &domain.Comment{
		ID:             m.ID.String(),
		AuthorID:       m.AuthorID,
		PostID:         m.PostID,
		Content:        m.Content,
		Depth:          m.Depth,
		ThreadPath:     m.ThreadPath,
		IsPinned:       m.IsPinned,
		PinnedAt:       m.PinnedAt,
		IsHighlighted:  m.IsHighlighted,
		HighlightedAt:  m.HighlightedAt,
		IsApproved:     m.IsApproved,
		ModeratedAt:    m.ModeratedAt,
		ModeratedBy:    m.ModeratedBy.String,
		IsEdited:       m.IsEdited,
		EditedAt:       m.EditedAt,
		MentionedUsers: []string(m.MentionedUsers),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.ParentID != nil {
		parentID := m.ParentID.String()
		c.ParentID = &parentID
	}
	return c
}

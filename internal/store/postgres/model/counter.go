package model

import (
	"time"

	"github.com/goto/engagement/domain"
)

type EntityCounter struct {
	EntityKind string `gorm:"primaryKey"`
	EntityID   string `gorm:"primaryKey"`
	Field      string `gorm:"primaryKey"`
	Value      int64  `gorm:"not null"`
	UpdatedAt  time.Time
}

func (EntityCounter) TableName() string {
	return "entity_counters"
}

func (m *EntityCounter) FromDomain(key domain.CounterKey, value int64) {
	m.EntityKind = string(key.Kind)
	m.EntityID = key.ID
	m.Field = string(key.Field)
	m.Value = value
}

func (m *EntityCounter) Key() domain.CounterKey {
	return domain.CounterKey{
		Kind:  domain.EntityKind(m.EntityKind),
		ID:    m.EntityID,
		Field: domain.CounterField(m.Field),
	}
}

package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/goto/salt/audit"
)

const (
	EventParentTypeComment  = "comment"
	EventParentTypeReaction = "reaction"
)

// Event is an audit log entry of a comment or reaction change.
type Event struct {
	ParentType string         `json:"parent_type" yaml:"parent_type"`
	ParentID   string         `json:"parent_id" yaml:"parent_id"`
	Timestamp  time.Time      `json:"timestamp" yaml:"timestamp"`
	Type       string         `json:"type" yaml:"type"`
	Actor      string         `json:"actor" yaml:"actor"`
	Data       map[string]any `json:"data" yaml:"data"`
}

func (e *Event) FromAuditLog(l *audit.Log) error {
	parentType := strings.Split(l.Action, ".")[0]

	var idKey string
	switch parentType {
	case EventParentTypeComment:
		idKey = "comment_id"
	case EventParentTypeReaction:
		idKey = "target_id"
	default:
		return fmt.Errorf("invalid parent type %q", parentType)
	}

	data, ok := l.Data.(map[string]any)
	if !ok {
		return fmt.Errorf("invalid data type %T", l.Data)
	}
	id, ok := data[idKey].(string)
	if !ok {
		return fmt.Errorf("invalid parent_id=%q for parent_type=%q", id, parentType)
	}

	e.Data = data
	e.ParentID = id
	e.Timestamp = l.Timestamp
	e.Type = l.Action
	e.Actor = l.Actor
	e.ParentType = parentType
	return nil
}

type ListEventsFilter struct {
	Types      []string
	ParentType string
	ParentID   string
	// TargetType narrows reaction events down to one kind of target
	TargetType TargetType
	Actor      string
	Since      time.Time
	Size       int
	Offset     int
}

type ListAuditLogFilter struct {
	Actions    []string
	CommentID  string
	TargetID   string
	TargetType string
	Actor      string
	Since      time.Time
	Size       int
	Offset     int
}

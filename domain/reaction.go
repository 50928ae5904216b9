package domain

import (
	"fmt"
	"time"
)

type TargetType string

const (
	TargetTypePost    TargetType = "post"
	TargetTypeComment TargetType = "comment"
	TargetTypeGroup   TargetType = "group"
	TargetTypeEvent   TargetType = "event"
	TargetTypePoll    TargetType = "poll"
)

var TargetTypes = []TargetType{
	TargetTypePost,
	TargetTypeComment,
	TargetTypeGroup,
	TargetTypeEvent,
	TargetTypePoll,
}

func (t TargetType) IsValid() bool {
	for _, v := range TargetTypes {
		if t == v {
			return true
		}
	}
	return false
}

type ReactionType string

const (
	ReactionTypeLike       ReactionType = "like"
	ReactionTypeLove       ReactionType = "love"
	ReactionTypeLaugh      ReactionType = "laugh"
	ReactionTypeWow        ReactionType = "wow"
	ReactionTypeSad        ReactionType = "sad"
	ReactionTypeAngry      ReactionType = "angry"
	ReactionTypeCare       ReactionType = "care"
	ReactionTypeCelebrate  ReactionType = "celebrate"
	ReactionTypeSupport    ReactionType = "support"
	ReactionTypeInsightful ReactionType = "insightful"
)

var ReactionTypes = []ReactionType{
	ReactionTypeLike,
	ReactionTypeLove,
	ReactionTypeLaugh,
	ReactionTypeWow,
	ReactionTypeSad,
	ReactionTypeAngry,
	ReactionTypeCare,
	ReactionTypeCelebrate,
	ReactionTypeSupport,
	ReactionTypeInsightful,
}

func (r ReactionType) IsValid() bool {
	for _, v := range ReactionTypes {
		if r == v {
			return true
		}
	}
	return false
}

type ReactionAction string

const (
	ReactionActionAdded    ReactionAction = "added"
	ReactionActionRemoved  ReactionAction = "removed"
	ReactionActionChanged  ReactionAction = "changed"
	ReactionActionNotFound ReactionAction = "not_found"
)

// LikesDelta is the change an action makes to the number of active
// reactions on its target.
func (a ReactionAction) LikesDelta() int64 {
	switch a {
	case ReactionActionAdded:
		return 1
	case ReactionActionRemoved:
		return -1
	default:
		return 0
	}
}

// ReactionTarget identifies the entity a reaction is attached to.
type ReactionTarget struct {
	ID   string     `json:"target_id" yaml:"target_id"`
	Type TargetType `json:"target_type" yaml:"target_type"`
}

func (t ReactionTarget) String() string {
	return fmt.Sprintf("%s:%s", t.Type, t.ID)
}

type ReactionKey struct {
	UserID string
	Target ReactionTarget
}

type Reaction struct {
	ID           string       `json:"id" yaml:"id"`
	UserID       string       `json:"user_id" yaml:"user_id"`
	TargetID     string       `json:"target_id" yaml:"target_id"`
	TargetType   TargetType   `json:"target_type" yaml:"target_type"`
	ReactionType ReactionType `json:"reaction_type" yaml:"reaction_type"`
	IsActive     bool         `json:"is_active" yaml:"is_active"`
	CreatedAt    time.Time    `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt    time.Time    `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

func (r *Reaction) Key() ReactionKey {
	return ReactionKey{
		UserID: r.UserID,
		Target: ReactionTarget{ID: r.TargetID, Type: r.TargetType},
	}
}

// Toggle applies a requested reaction to r and returns what happened. An
// inactive row, including one that was never stored, is (re)activated with
// the requested type. Requesting the active type deactivates the row and
// requesting a different type switches it.
func (r *Reaction) Toggle(requested ReactionType) ReactionAction {
	switch {
	case !r.IsActive:
		r.IsActive = true
		r.ReactionType = requested
		return ReactionActionAdded
	case r.ReactionType == requested:
		r.IsActive = false
		return ReactionActionRemoved
	default:
		r.ReactionType = requested
		return ReactionActionChanged
	}
}

// Withdraw deactivates r regardless of its type.
func (r *Reaction) Withdraw() ReactionAction {
	if !r.IsActive {
		return ReactionActionNotFound
	}
	r.IsActive = false
	return ReactionActionRemoved
}

type ReactionSummary struct {
	Total     int64                  `json:"total" yaml:"total"`
	Reactions map[ReactionType]int64 `json:"reactions" yaml:"reactions"`
}

func NewReactionSummary() *ReactionSummary {
	return &ReactionSummary{Reactions: map[ReactionType]int64{}}
}

func (s *ReactionSummary) Add(reactionType ReactionType, count int64) {
	if s.Reactions == nil {
		s.Reactions = map[ReactionType]int64{}
	}
	s.Reactions[reactionType] += count
	s.Total += count
}

type ReactResult struct {
	Action       ReactionAction   `json:"action" yaml:"action"`
	UserReaction *ReactionType    `json:"user_reaction" yaml:"user_reaction"`
	Reactions    *ReactionSummary `json:"reactions" yaml:"reactions"`
}

type Timeframe string

const (
	Timeframe24Hours Timeframe = "24hours"
	Timeframe7Days   Timeframe = "7days"
	Timeframe30Days  Timeframe = "30days"
	TimeframeAll     Timeframe = "all"
)

// Since returns the lower bound of the timeframe relative to now. The zero
// time means unbounded.
func (t Timeframe) Since(now time.Time) (time.Time, error) {
	switch t {
	case Timeframe24Hours:
		return now.Add(-24 * time.Hour), nil
	case Timeframe7Days, "":
		return now.AddDate(0, 0, -7), nil
	case Timeframe30Days:
		return now.AddDate(0, 0, -30), nil
	case TimeframeAll:
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("%w: invalid timeframe %q", ErrValidation, t)
	}
}

type ListReactionsFilter struct {
	UserID       string
	TargetID     string
	TargetType   TargetType
	ReactionType ReactionType
	Since        time.Time
	Size         int
	Offset       int
}

type PopularTarget struct {
	TargetID    string     `json:"target_id" yaml:"target_id"`
	TargetType  TargetType `json:"target_type" yaml:"target_type"`
	LikesCount  int64      `json:"likes_count" yaml:"likes_count"`
	UniqueUsers int64      `json:"unique_users" yaml:"unique_users"`
}

type ReactionStat struct {
	ReactionType ReactionType `json:"reaction_type" yaml:"reaction_type"`
	TargetType   TargetType   `json:"target_type" yaml:"target_type"`
	Count        int64        `json:"count" yaml:"count"`
}

// TargetLikes is the ledger-derived count of active reactions on a target.
type TargetLikes struct {
	Target ReactionTarget
	Count  int64
}

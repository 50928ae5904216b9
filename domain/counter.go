package domain

import "fmt"

type EntityKind string

const (
	EntityKindPost    EntityKind = "post"
	EntityKindComment EntityKind = "comment"
	EntityKindGroup   EntityKind = "group"
	EntityKindEvent   EntityKind = "event"
	EntityKindPoll    EntityKind = "poll"
)

type CounterField string

const (
	CounterFieldReplies  CounterField = "replies_count"
	CounterFieldLikes    CounterField = "likes_count"
	CounterFieldComments CounterField = "comments_count"
)

// CounterKey addresses a single non-negative integer attached to an entity.
type CounterKey struct {
	Kind  EntityKind   `json:"kind" yaml:"kind"`
	ID    string       `json:"id" yaml:"id"`
	Field CounterField `json:"field" yaml:"field"`
}

func (k CounterKey) String() string {
	return fmt.Sprintf("%s:%s:%s", k.Kind, k.ID, k.Field)
}

func (k CounterKey) Validate() error {
	if k.Kind == "" || k.ID == "" || k.Field == "" {
		return fmt.Errorf("%w: incomplete counter key %q", ErrValidation, k.String())
	}
	return nil
}

func RepliesCountKey(commentID string) CounterKey {
	return CounterKey{Kind: EntityKindComment, ID: commentID, Field: CounterFieldReplies}
}

func CommentsCountKey(postID string) CounterKey {
	return CounterKey{Kind: EntityKindPost, ID: postID, Field: CounterFieldComments}
}

// LikesCountKey returns the likes counter of a reaction target. The target
// type selects the entity table the counter is attached to.
func LikesCountKey(targetType TargetType, targetID string) CounterKey {
	return CounterKey{Kind: EntityKind(targetType), ID: targetID, Field: CounterFieldLikes}
}

// CounterValues is the result of a batched counter read. Missing keys read
// as zero.
type CounterValues map[CounterKey]int64

func (v CounterValues) Of(key CounterKey) int64 {
	if v == nil {
		return 0
	}
	return v[key]
}

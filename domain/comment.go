package domain

import (
	"strings"
	"time"
)

const (
	MaxCommentDepth   = 5
	MaxCommentLength  = 5000
	MaxMentionedUsers = 10

	threadPathSeparator = "."
)

type Comment struct {
	ID             string     `json:"id" yaml:"id"`
	AuthorID       string     `json:"author_id" yaml:"author_id"`
	PostID         string     `json:"post_id" yaml:"post_id"`
	ParentID       *string    `json:"parent_id" yaml:"parent_id"`
	Content        string     `json:"content" yaml:"content"`
	Depth          int        `json:"depth" yaml:"depth"`
	ThreadPath     string     `json:"thread_path" yaml:"thread_path"`
	RepliesCount   int64      `json:"replies_count" yaml:"replies_count"`
	LikesCount     int64      `json:"likes_count" yaml:"likes_count"`
	IsPinned       bool       `json:"is_pinned" yaml:"is_pinned"`
	PinnedAt       *time.Time `json:"pinned_at,omitempty" yaml:"pinned_at,omitempty"`
	IsHighlighted  bool       `json:"is_highlighted" yaml:"is_highlighted"`
	HighlightedAt  *time.Time `json:"highlighted_at,omitempty" yaml:"highlighted_at,omitempty"`
	IsApproved     bool       `json:"is_approved" yaml:"is_approved"`
	ModeratedAt    *time.Time `json:"moderated_at,omitempty" yaml:"moderated_at,omitempty"`
	ModeratedBy    string     `json:"moderated_by,omitempty" yaml:"moderated_by,omitempty"`
	IsEdited       bool       `json:"is_edited" yaml:"is_edited"`
	EditedAt       *time.Time `json:"edited_at,omitempty" yaml:"edited_at,omitempty"`
	MentionedUsers []string   `json:"mentioned_users,omitempty" yaml:"mentioned_users,omitempty"`
	CreatedAt      time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

func (c *Comment) IsRoot() bool {
	return c.ParentID == nil || *c.ParentID == ""
}

func (c *Comment) IsAuthor(userID string) bool {
	return userID != "" && c.AuthorID == userID
}

// PlaceUnder assigns depth and thread path of c relative to parent. A nil
// parent makes c a root comment. c.ID must already be assigned.
func (c *Comment) PlaceUnder(parent *Comment) {
	token := ThreadToken(c.ID)
	if parent == nil {
		c.ParentID = nil
		c.Depth = 0
		c.ThreadPath = token
		return
	}

	parentID := parent.ID
	c.ParentID = &parentID
	c.Depth = parent.Depth + 1
	c.ThreadPath = parent.ThreadPath + threadPathSeparator + token
}

// IsDescendantOf reports whether c lives in the subtree rooted at ancestor.
func (c *Comment) IsDescendantOf(ancestor *Comment) bool {
	return strings.HasPrefix(c.ThreadPath, ancestor.ThreadPath+threadPathSeparator)
}

// ThreadToken returns the path token of a comment id: the lowercase hex
// digits of the id without separators. Ids are time ordered, so tokens of
// siblings sort by creation time.
func ThreadToken(id string) string {
	return strings.ToLower(strings.ReplaceAll(id, "-", ""))
}

// ThreadPrefix returns the prefix shared by the thread paths of every
// descendant of a comment with the given path.
func ThreadPrefix(threadPath string) string {
	return threadPath + threadPathSeparator
}

type CommentModeration struct {
	IsPinned      *bool
	IsHighlighted *bool
	IsApproved    *bool
	ModeratedBy   string
}

type ListCommentsFilter struct {
	PostID       string    `mapstructure:"post_id" validate:"omitempty"`
	AuthorID     string    `mapstructure:"author_id" validate:"omitempty"`
	ParentID     string    `mapstructure:"parent_id" validate:"omitempty"`
	RootsOnly    bool      `mapstructure:"roots_only" validate:"omitempty"`
	ApprovedOnly bool      `mapstructure:"approved_only" validate:"omitempty"`
	Query        string    `mapstructure:"q" validate:"omitempty"`
	Since        time.Time `mapstructure:"since" validate:"omitempty"`
	Size         int       `mapstructure:"size" validate:"omitempty,min=0"`
	Offset       int       `mapstructure:"offset" validate:"omitempty,min=0"`
	OrderBy      []string  `mapstructure:"order_by" validate:"omitempty"`
}

// CommentTreeStats is the tree-derived truth behind the comment counters.
type CommentTreeStats struct {
	RepliesByComment map[string]int64
	CommentsByPost   map[string]int64
}

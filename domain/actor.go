package domain

// Actor is an already authenticated caller together with the capabilities
// resolved for the resource being acted on.
type Actor struct {
	ID          string `json:"id" yaml:"id"`
	CanView     bool   `json:"can_view" yaml:"can_view"`
	CanModerate bool   `json:"can_moderate" yaml:"can_moderate"`
	IsOwner     bool   `json:"is_owner" yaml:"is_owner"`
}

// TargetPolicy carries the content flags of the post, group or other entity
// that comments and reactions are attached to.
type TargetPolicy struct {
	CommentsEnabled  bool `json:"comments_enabled" yaml:"comments_enabled"`
	ReactionsEnabled bool `json:"reactions_enabled" yaml:"reactions_enabled"`
}

// SystemActorName is recorded as the actor of changes made by jobs.
const SystemActorName = "system"

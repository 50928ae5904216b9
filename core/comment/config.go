package comment

type Config struct {
	// MaxDepth is the deepest level a reply can be placed at. Roots are at
	// depth 0.
	MaxDepth int `mapstructure:"max_depth" yaml:"max_depth" default:"5" validate:"min=1,max=5"`
	// HoldExpression holds new comments for moderation when it evaluates to
	// true, e.g. `len(mentions) > 5 || content contains "http://"`.
	HoldExpression string `mapstructure:"hold_expression" yaml:"hold_expression,omitempty"`
	AllowHTML      bool   `mapstructure:"allow_html" yaml:"allow_html"`
}

package comment

import (
	"fmt"

	"github.com/antonmedv/expr"
	"github.com/antonmedv/expr/vm"

	"github.com/goto/engagement/domain"
)

// HoldEnv is the set of variables available to a hold expression.
type HoldEnv struct {
	Content  string   `expr:"content"`
	Mentions []string `expr:"mentions"`
	Depth    int      `expr:"depth"`
	AuthorID string   `expr:"author_id"`
	PostID   string   `expr:"post_id"`
}

// HoldRule decides whether a new comment waits for moderator approval.
type HoldRule struct {
	expression string
	program    *vm.Program
}

func NewHoldRule(expression string) (*HoldRule, error) {
	program, err := expr.Compile(expression, expr.Env(HoldEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w %q: %s", ErrInvalidHoldExpression, expression, err)
	}
	return &HoldRule{expression: expression, program: program}, nil
}

func (r *HoldRule) String() string {
	return r.expression
}

func (r *HoldRule) ShouldHold(c *domain.Comment) (bool, error) {
	result, err := expr.Run(r.program, HoldEnv{
		Content:  c.Content,
		Mentions: c.MentionedUsers,
		Depth:    c.Depth,
		AuthorID: c.AuthorID,
		PostID:   c.PostID,
	})
	if err != nil {
		return false, fmt.Errorf("evaluating hold expression %q: %w", r.expression, err)
	}

	hold, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("hold expression %q returned %T", r.expression, result)
	}
	return hold, nil
}

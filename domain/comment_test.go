package domain_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/goto/engagement/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadToken(t *testing.T) {
	assert.Equal(t, "018e8f3b2c4d7a1b9c0d1e2f3a4b5c6d", domain.ThreadToken("018E8F3B-2C4D-7A1B-9C0D-1E2F3A4B5C6D"))
}

func TestComment_PlaceUnder(t *testing.T) {
	t.Run("root comment", func(t *testing.T) {
		c := &domain.Comment{ID: uuid.Must(uuid.NewV7()).String()}
		c.PlaceUnder(nil)

		assert.True(t, c.IsRoot())
		assert.Equal(t, 0, c.Depth)
		assert.Equal(t, domain.ThreadToken(c.ID), c.ThreadPath)
		assert.Len(t, c.ThreadPath, 32)
	})

	t.Run("nested comments extend the parent path", func(t *testing.T) {
		root := &domain.Comment{ID: uuid.Must(uuid.NewV7()).String()}
		root.PlaceUnder(nil)

		child := &domain.Comment{ID: uuid.Must(uuid.NewV7()).String()}
		child.PlaceUnder(root)
		grandchild := &domain.Comment{ID: uuid.Must(uuid.NewV7()).String()}
		grandchild.PlaceUnder(child)

		require.NotNil(t, child.ParentID)
		assert.Equal(t, root.ID, *child.ParentID)
		assert.Equal(t, 1, child.Depth)
		assert.Equal(t, 2, grandchild.Depth)
		assert.Equal(t, root.ThreadPath+"."+domain.ThreadToken(child.ID), child.ThreadPath)
		assert.Equal(t, child.ThreadPath+"."+domain.ThreadToken(grandchild.ID), grandchild.ThreadPath)
		assert.True(t, grandchild.IsDescendantOf(root))
		assert.True(t, strings.HasPrefix(grandchild.ThreadPath, domain.ThreadPrefix(child.ThreadPath)))
		assert.False(t, root.IsDescendantOf(child))
	})

	t.Run("siblings sort by creation", func(t *testing.T) {
		root := &domain.Comment{ID: uuid.Must(uuid.NewV7()).String()}
		root.PlaceUnder(nil)

		var previous string
		for i := 0; i < 20; i++ {
			c := &domain.Comment{ID: uuid.Must(uuid.NewV7()).String()}
			c.PlaceUnder(root)
			assert.Greater(t, c.ThreadPath, previous)
			previous = c.ThreadPath
		}
	})
}

func TestComment_IsAuthor(t *testing.T) {
	c := &domain.Comment{AuthorID: "user-1"}

	assert.True(t, c.IsAuthor("user-1"))
	assert.False(t, c.IsAuthor("user-2"))
	assert.False(t, (&domain.Comment{}).IsAuthor(""))
}

func TestErrorKind(t *testing.T) {
	testCases := []struct {
		err      error
		expected string
	}{
		{nil, ""},
		{fmt.Errorf("%w: comment not found", domain.ErrNotFound), domain.ErrorKindNotFound},
		{fmt.Errorf("%w: not the author", domain.ErrPermissionDenied), domain.ErrorKindPermissionDenied},
		{fmt.Errorf("wrapped: %w", fmt.Errorf("%w: too deep", domain.ErrValidation)), domain.ErrorKindValidation},
		{fmt.Errorf("%w: duplicate reaction", domain.ErrConflict), domain.ErrorKindConflict},
		{errors.New("connection reset"), domain.ErrorKindInternal},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, domain.ErrorKind(tc.err))
	}
}

func TestCounterKey(t *testing.T) {
	key := domain.LikesCountKey(domain.TargetTypeComment, "c-1")

	assert.Equal(t, domain.CounterKey{Kind: domain.EntityKindComment, ID: "c-1", Field: domain.CounterFieldLikes}, key)
	assert.Equal(t, "comment:c-1:likes_count", key.String())
	assert.NoError(t, key.Validate())
	assert.ErrorIs(t, domain.CounterKey{Kind: domain.EntityKindPost}.Validate(), domain.ErrValidation)

	values := domain.CounterValues{key: 3}
	assert.Equal(t, int64(3), values.Of(key))
	assert.Equal(t, int64(0), values.Of(domain.RepliesCountKey("c-1")))
}

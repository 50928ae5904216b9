package diff_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/goto/engagement/pkg/diff"
	"github.com/stretchr/testify/assert"
)

func TestGetChangelog(t *testing.T) {
	testCases := []struct {
		name     string
		a        any
		b        any
		expected []*diff.PatchOp
	}{
		{
			name: "no diff",
			a: map[string]interface{}{
				"content": "hello",
				"depth":   1,
			},
			b: map[string]interface{}{
				"content": "hello",
				"depth":   1,
			},
			expected: nil,
		},
		{
			name: "edited content",
			a: map[string]interface{}{
				"content":   "hello",
				"is_edited": false,
			},
			b: map[string]interface{}{
				"content":   "hello world",
				"is_edited": true,
			},
			expected: []*diff.PatchOp{
				{
					Op:       "replace",
					Actor:    "user-1",
					Path:     "content",
					OldValue: "hello",
					NewValue: "hello world",
				},
				{
					Op:       "replace",
					Actor:    "user-1",
					Path:     "is_edited",
					OldValue: false,
					NewValue: true,
				},
			},
		},
		{
			name: "added field",
			a:    map[string]interface{}{"content": "hello"},
			b: map[string]interface{}{
				"content":   "hello",
				"edited_at": "2024-03-31T00:00:00Z",
			},
			expected: []*diff.PatchOp{
				{
					Op:       "add",
					Actor:    "user-1",
					Path:     "edited_at",
					NewValue: "2024-03-31T00:00:00Z",
				},
			},
		},
		{
			name: "removed nested field",
			a: map[string]interface{}{
				"moderation": map[string]interface{}{
					"reason": "spam",
				},
			},
			b: map[string]interface{}{
				"moderation": map[string]interface{}{},
			},
			expected: []*diff.PatchOp{
				{
					Op:       "remove",
					Actor:    "user-1",
					Path:     "moderation.reason",
					OldValue: "spam",
				},
			},
		},
		{
			name: "escaped keys",
			a:    map[string]interface{}{"a/b": "x"},
			b:    map[string]interface{}{"a/b": "y"},
			expected: []*diff.PatchOp{
				{
					Op:       "replace",
					Actor:    "user-1",
					Path:     "a/b",
					OldValue: "x",
					NewValue: "y",
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := diff.GetChangelog("user-1", tc.a, tc.b)
			assert.NoError(t, err)
			assert.Empty(t, cmp.Diff(tc.expected, actual, cmpopts.SortSlices(func(a, b *diff.PatchOp) bool {
				return a.Path < b.Path
			})))
		})
	}

	t.Run("should fail on values that can't be marshalled", func(t *testing.T) {
		_, err := diff.GetChangelog("user-1", map[string]interface{}{"ch": make(chan int)}, nil)
		assert.Error(t, err)
	})
}

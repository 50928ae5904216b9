package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"

	"github.com/goto/engagement/core/comment"
	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/internal/store/postgres"
	"github.com/goto/engagement/pkg/log"
	"github.com/goto/engagement/pkg/postgrestest"
)

type CommentRepositorySuite struct {
	suite.Suite
	store      *postgres.Store
	pool       *dockertest.Pool
	resource   *dockertest.Resource
	repository *postgres.CommentRepository
}

func TestCommentRepository(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(CommentRepositorySuite))
}

func (s *CommentRepositorySuite) SetupSuite() {
	var err error
	logger := log.NewCtxLogger("debug", []string{"test"})
	s.store, s.pool, s.resource, err = postgrestest.NewTestStore(logger)
	if err != nil {
		s.T().Fatal(err)
	}

	s.repository = postgres.NewCommentRepository(s.store.DB())
}

func (s *CommentRepositorySuite) SetupTest() {
	s.Require().NoError(postgrestest.Truncate(s.store))
}

func (s *CommentRepositorySuite) TearDownSuite() {
	if err := s.store.Close(); err != nil {
		s.T().Fatal(err)
	}

	if err := postgrestest.PurgeTestDocker(s.pool, s.resource); err != nil {
		s.T().Fatal(err)
	}
}

// newComment builds a comment placed under parent, ready to be stored.
func newComment(postID string, parent *domain.Comment, content string) *domain.Comment {
	c := &domain.Comment{
		ID:         uuid.Must(uuid.NewV7()).String(),
		AuthorID:   "user-1",
		PostID:     postID,
		Content:    content,
		IsApproved: true,
	}
	c.PlaceUnder(parent)
	return c
}

func (s *CommentRepositorySuite) mustCreate(postID string, parent *domain.Comment, content string) *domain.Comment {
	c := newComment(postID, parent, content)
	s.Require().NoError(s.repository.Create(context.Background(), c))
	return c
}

func (s *CommentRepositorySuite) TestCreate() {
	ctx := context.Background()

	s.Run("should store root and reply", func() {
		root := s.mustCreate("post-1", nil, "root")
		reply := newComment("post-1", root, "reply")
		reply.MentionedUsers = []string{"user-2"}

		err := s.repository.Create(ctx, reply)

		s.NoError(err)
		s.False(reply.CreatedAt.IsZero())

		got, err := s.repository.GetByID(ctx, reply.ID)
		s.Require().NoError(err)
		s.Equal(root.ID, *got.ParentID)
		s.Equal(1, got.Depth)
		s.Equal(reply.ThreadPath, got.ThreadPath)
		s.Equal([]string{"user-2"}, got.MentionedUsers)
	})

	s.Run("should return duplicate error on existing id", func() {
		root := s.mustCreate("post-1", nil, "root")

		err := s.repository.Create(ctx, root)

		s.ErrorIs(err, comment.ErrDuplicateComment)
	})

	s.Run("should return parent not found on missing parent", func() {
		ghost := newComment("post-1", nil, "ghost")
		orphan := newComment("post-1", ghost, "orphan")

		err := s.repository.Create(ctx, orphan)

		s.ErrorIs(err, comment.ErrParentNotFound)
	})
}

func (s *CommentRepositorySuite) TestGetByID() {
	s.Run("should return not found on unknown or malformed id", func() {
		for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
			_, err := s.repository.GetByID(context.Background(), id)
			s.ErrorIs(err, comment.ErrCommentNotFound)
		}
	})
}

func (s *CommentRepositorySuite) TestUpdate() {
	ctx := context.Background()
	c := s.mustCreate("post-1", nil, "before")

	c.Content = "after"
	c.IsEdited = true
	c.IsPinned = true
	c.Depth = 3
	s.Require().NoError(s.repository.Update(ctx, c))

	got, err := s.repository.GetByID(ctx, c.ID)
	s.Require().NoError(err)
	s.Equal("after", got.Content)
	s.True(got.IsEdited)
	s.True(got.IsPinned)
	s.Equal(0, got.Depth, "position in the tree is not updatable")

	missing := newComment("post-1", nil, "missing")
	s.ErrorIs(s.repository.Update(ctx, missing), comment.ErrCommentNotFound)
}

func (s *CommentRepositorySuite) TestDelete() {
	ctx := context.Background()
	root := s.mustCreate("post-1", nil, "root")
	child := s.mustCreate("post-1", root, "child")

	s.ErrorIs(s.repository.Delete(ctx, root.ID), comment.ErrHasReplies)

	s.NoError(s.repository.Delete(ctx, child.ID))
	s.NoError(s.repository.Delete(ctx, root.ID))
	s.ErrorIs(s.repository.Delete(ctx, root.ID), comment.ErrCommentNotFound)
}

func (s *CommentRepositorySuite) TestListDescendants() {
	ctx := context.Background()
	root := s.mustCreate("post-1", nil, "root")
	a := s.mustCreate("post-1", root, "a")
	b := s.mustCreate("post-1", root, "b")
	a1 := s.mustCreate("post-1", a, "a1")
	hidden := newComment("post-1", b, "hidden")
	hidden.IsApproved = false
	s.Require().NoError(s.repository.Create(ctx, hidden))
	s.mustCreate("post-1", nil, "other root")

	all, err := s.repository.ListDescendants(ctx, root.ThreadPath, false)
	s.Require().NoError(err)
	s.Equal([]string{a.ID, a1.ID, b.ID, hidden.ID}, commentIDs(all))

	approved, err := s.repository.ListDescendants(ctx, root.ThreadPath, true)
	s.Require().NoError(err)
	s.Equal([]string{a.ID, a1.ID, b.ID}, commentIDs(approved))
}

func (s *CommentRepositorySuite) TestList() {
	ctx := context.Background()
	first := s.mustCreate("post-1", nil, "Hello 100% world")
	second := s.mustCreate("post-1", nil, "second")
	reply := s.mustCreate("post-1", first, "a reply")
	s.mustCreate("post-2", nil, "hello elsewhere")

	second.IsPinned = true
	s.Require().NoError(s.repository.Update(ctx, second))

	testCases := []struct {
		name        string
		filter      domain.ListCommentsFilter
		expectedIDs []string
	}{
		{
			name:        "roots of a post pinned first",
			filter:      domain.ListCommentsFilter{PostID: "post-1", RootsOnly: true, OrderBy: []string{"is_pinned:desc", "pinned_at:desc", "created_at"}},
			expectedIDs: []string{second.ID, first.ID},
		},
		{
			name:        "replies of a comment",
			filter:      domain.ListCommentsFilter{ParentID: first.ID},
			expectedIDs: []string{reply.ID},
		},
		{
			name:        "search escapes wildcards",
			filter:      domain.ListCommentsFilter{Query: "100%", OrderBy: []string{"created_at"}},
			expectedIDs: []string{first.ID},
		},
		{
			name:        "paginated newest first",
			filter:      domain.ListCommentsFilter{PostID: "post-1", OrderBy: []string{"created_at:desc"}, Size: 2, Offset: 1},
			expectedIDs: []string{second.ID, first.ID},
		},
		{
			name:        "malformed parent id",
			filter:      domain.ListCommentsFilter{ParentID: "nope"},
			expectedIDs: []string{},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			comments, err := s.repository.List(ctx, tc.filter)

			s.NoError(err)
			s.Equal(tc.expectedIDs, commentIDs(comments))
		})
	}
}

func (s *CommentRepositorySuite) TestTreeStats() {
	ctx := context.Background()
	root := s.mustCreate("post-1", nil, "root")
	a := s.mustCreate("post-1", root, "a")
	b := s.mustCreate("post-1", root, "b")
	other := s.mustCreate("post-2", nil, "other")

	stats, err := s.repository.TreeStats(ctx)

	s.NoError(err)
	s.Equal(map[string]int64{root.ID: 2, a.ID: 0, b.ID: 0, other.ID: 0}, stats.RepliesByComment)
	s.Equal(map[string]int64{"post-1": 3, "post-2": 1}, stats.CommentsByPost)
}

func commentIDs(comments []*domain.Comment) []string {
	ids := []string{}
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	return ids
}

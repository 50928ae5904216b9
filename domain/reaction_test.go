package domain_test

import (
	"testing"
	"time"

	"github.com/goto/engagement/domain"
	"github.com/stretchr/testify/assert"
)

func TestReaction_Toggle(t *testing.T) {
	testCases := []struct {
		name             string
		existing         domain.Reaction
		requested        domain.ReactionType
		expectedAction   domain.ReactionAction
		expectedIsActive bool
		expectedType     domain.ReactionType
	}{
		{
			name:             "new row is added",
			existing:         domain.Reaction{},
			requested:        domain.ReactionTypeLike,
			expectedAction:   domain.ReactionActionAdded,
			expectedIsActive: true,
			expectedType:     domain.ReactionTypeLike,
		},
		{
			name:             "same active type is removed",
			existing:         domain.Reaction{IsActive: true, ReactionType: domain.ReactionTypeLike},
			requested:        domain.ReactionTypeLike,
			expectedAction:   domain.ReactionActionRemoved,
			expectedIsActive: false,
			expectedType:     domain.ReactionTypeLike,
		},
		{
			name:             "different active type is changed",
			existing:         domain.Reaction{IsActive: true, ReactionType: domain.ReactionTypeLike},
			requested:        domain.ReactionTypeLove,
			expectedAction:   domain.ReactionActionChanged,
			expectedIsActive: true,
			expectedType:     domain.ReactionTypeLove,
		},
		{
			name:             "inactive row is reactivated with the requested type",
			existing:         domain.Reaction{IsActive: false, ReactionType: domain.ReactionTypeSad},
			requested:        domain.ReactionTypeWow,
			expectedAction:   domain.ReactionActionAdded,
			expectedIsActive: true,
			expectedType:     domain.ReactionTypeWow,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.existing
			action := r.Toggle(tc.requested)

			assert.Equal(t, tc.expectedAction, action)
			assert.Equal(t, tc.expectedIsActive, r.IsActive)
			assert.Equal(t, tc.expectedType, r.ReactionType)
		})
	}
}

func TestReaction_Withdraw(t *testing.T) {
	t.Run("should deactivate an active reaction", func(t *testing.T) {
		r := &domain.Reaction{IsActive: true, ReactionType: domain.ReactionTypeCare}

		assert.Equal(t, domain.ReactionActionRemoved, r.Withdraw())
		assert.False(t, r.IsActive)
		assert.Equal(t, domain.ReactionTypeCare, r.ReactionType)
	})

	t.Run("should report not found on an inactive reaction", func(t *testing.T) {
		r := &domain.Reaction{}

		assert.Equal(t, domain.ReactionActionNotFound, r.Withdraw())
		assert.False(t, r.IsActive)
	})
}

func TestReactionAction_LikesDelta(t *testing.T) {
	assert.Equal(t, int64(1), domain.ReactionActionAdded.LikesDelta())
	assert.Equal(t, int64(-1), domain.ReactionActionRemoved.LikesDelta())
	assert.Equal(t, int64(0), domain.ReactionActionChanged.LikesDelta())
	assert.Equal(t, int64(0), domain.ReactionActionNotFound.LikesDelta())
}

func TestReactionTypes(t *testing.T) {
	assert.Len(t, domain.ReactionTypes, 10)
	for _, rt := range domain.ReactionTypes {
		assert.True(t, rt.IsValid(), rt)
	}
	assert.False(t, domain.ReactionType("meh").IsValid())

	assert.True(t, domain.TargetTypePoll.IsValid())
	assert.False(t, domain.TargetType("user").IsValid())
}

func TestReactionSummary_Add(t *testing.T) {
	s := &domain.ReactionSummary{}
	s.Add(domain.ReactionTypeLike, 2)
	s.Add(domain.ReactionTypeWow, 1)
	s.Add(domain.ReactionTypeLike, 1)

	assert.Equal(t, int64(4), s.Total)
	assert.Equal(t, map[domain.ReactionType]int64{
		domain.ReactionTypeLike: 3,
		domain.ReactionTypeWow:  1,
	}, s.Reactions)
}

func TestTimeframe_Since(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	testCases := []struct {
		timeframe        domain.Timeframe
		expected         time.Time
		expectedErrorMsg string
	}{
		{timeframe: domain.Timeframe24Hours, expected: time.Date(2024, 3, 30, 12, 0, 0, 0, time.UTC)},
		{timeframe: domain.Timeframe7Days, expected: time.Date(2024, 3, 24, 12, 0, 0, 0, time.UTC)},
		{timeframe: "", expected: time.Date(2024, 3, 24, 12, 0, 0, 0, time.UTC)},
		{timeframe: domain.Timeframe30Days, expected: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{timeframe: domain.TimeframeAll, expected: time.Time{}},
		{timeframe: "1year", expectedErrorMsg: "invalid timeframe"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.timeframe), func(t *testing.T) {
			actual, err := tc.timeframe.Since(now)
			if tc.expectedErrorMsg != "" {
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.ErrorContains(t, err, tc.expectedErrorMsg)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

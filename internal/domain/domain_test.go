package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	tests := []struct {
		name    string
		in      int
		wantErr error
	}{
		{name: "below range", in: 0, wantErr: ErrInvalidRating},
		{name: "lower bound", in: 1},
		{name: "middle", in: 3},
		{name: "upper bound", in: 5},
		{name: "above range", in: 6, wantErr: ErrInvalidRating},
		{name: "negative", in: -1, wantErr: ErrInvalidRating},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRating(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, r.Int())
		})
	}
}

func TestParticipationLevel(t *testing.T) {
	tests := []struct {
		attended int
		want     string
	}{
		{0, LevelInactive},
		{1, LevelModeratelyActive},
		{2, LevelModeratelyActive},
		{3, LevelActive},
		{4, LevelActive},
		{5, LevelHighlyActive},
		{12, LevelHighlyActive},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParticipationLevel(tt.attended), "attended=%d", tt.attended)
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(3, 0))
	assert.Equal(t, 66.67, Percentage(2, 3))
	assert.Equal(t, 100.0, Percentage(4, 4))
	assert.Equal(t, 4.67, RoundTo2(14.0/3.0))
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("r.dao.Admit -> %w", ErrCapacityExceeded)

	assert.Equal(t, KindBusinessRule, KindOf(wrapped))
	assert.Equal(t, KindConflict, KindOf(ErrDuplicateRegistration))
	assert.Equal(t, KindNotFound, KindOf(ErrRegistrationNotFound))
	assert.Equal(t, KindStorageUnavailable, KindOf(ErrStorageUnavailable))
	assert.Equal(t, KindUnexpected, KindOf(errors.New("boom")))
	assert.Equal(t, KindValidation, KindOf(NewValidationError(errors.New("title: cannot be blank"))))

	e, ok := AsError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "capacity_exceeded", e.Code)
}

func TestEventPhase(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	e := Event{StartAt: start, EndAt: start.Add(2 * time.Hour)}

	assert.Equal(t, "upcoming", e.Phase(start.Add(-time.Minute)))
	assert.Equal(t, "ongoing", e.Phase(start))
	assert.Equal(t, "ongoing", e.Phase(start.Add(2*time.Hour)))
	assert.Equal(t, "completed", e.Phase(start.Add(3*time.Hour)))
}

func TestEventStatsDerive(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	capacity := 4
	s := EventStats{
		StartAt:            start,
		EndAt:              start.Add(time.Hour),
		MaxCapacity:        &capacity,
		TotalRegistrations: 3,
		TotalAttendance:    2,
		FeedbackCount:      1,
	}

	s.Derive(start.Add(-time.Hour))

	assert.Equal(t, 66.67, s.AttendancePercentage)
	assert.Equal(t, 50.0, s.FeedbackResponseRate)
	require.NotNil(t, s.CapacityUtilization)
	assert.Equal(t, 75.0, *s.CapacityUtilization)
	assert.Equal(t, "upcoming", s.Phase)
}

func TestEnums(t *testing.T) {
	assert.True(t, EventTypeTechTalk.IsValid())
	assert.False(t, EventType("Workshop").IsValid())
	assert.True(t, CheckInQRCode.IsValid())
	assert.False(t, CheckInMethod("nfc").IsValid())
}

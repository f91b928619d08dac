package configurator

import (
	"testing"
	"time"

	"bartile/internal/domain/entity"
	domainerrors "bartile/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_EndToEnd(t *testing.T) {
	s := NewSession(uuid.New(), time.Now())
	require.Equal(t, StepProfile, s.Step())
	require.Equal(t, entity.DefaultConfiguration(), s.Configuration())

	s.Apply(SetProfile(testProfile()))
	v, moved := s.Next()
	require.True(t, moved)
	assert.Equal(t, int(StepColor), v.Step)

	s.Apply(SetColor(testColor()))
	v, moved = s.Next()
	require.True(t, moved)
	assert.Equal(t, int(StepTexture), v.Step)

	s.Apply(SetTexture(testTexture()))
	v, moved = s.Next()
	require.True(t, moved)
	assert.Equal(t, int(StepOptions), v.Step)

	v, moved = s.Next()
	require.True(t, moved)
	assert.Equal(t, int(StepSummary), v.Step)

	cfg := s.Configuration()
	assert.True(t, IsComplete(&cfg))
	assert.True(t, v.Complete)
}

func TestSession_BlockedNextReportsFalse(t *testing.T) {
	s := NewSession(uuid.New(), time.Now())

	v, moved := s.Next()

	assert.False(t, moved)
	assert.Equal(t, int(StepProfile), v.Step)
	assert.False(t, v.CanProceed)
}

func TestSession_ResetReturnsToFirstStep(t *testing.T) {
	s := NewSession(uuid.New(), time.Now())
	s.Apply(SetProfile(testProfile()))
	s.Next()
	s.Apply(SetEdge(entity.EdgeToscana))

	v := s.Reset()

	assert.Equal(t, int(StepProfile), v.Step)
	assert.Equal(t, entity.DefaultConfiguration(), s.Configuration())
}

func TestSession_SubmitGuards(t *testing.T) {
	s := NewSession(uuid.New(), time.Now())

	_, err := s.BeginSubmit()
	require.ErrorIs(t, err, domainerrors.ErrQuoteIncomplete)
	assert.False(t, s.Submitting())

	s.Apply(SetProfile(testProfile()))
	s.Apply(SetColor(testColor()))
	s.Apply(SetTexture(testTexture()))

	snapshot, err := s.BeginSubmit()
	require.NoError(t, err)
	assert.True(t, s.Submitting())
	assert.Equal(t, s.Configuration(), snapshot)

	_, err = s.BeginSubmit()
	require.ErrorIs(t, err, domainerrors.ErrSubmissionInFlight)

	s.EndSubmit()
	assert.False(t, s.Submitting())
	assert.Equal(t, snapshot, s.Configuration(), "configuration survives the submission")
}

func TestSession_RestoreFastForwards(t *testing.T) {
	p, c := testProfile(), testColor()
	cfg := entity.DefaultConfiguration()
	cfg.Profile, cfg.Color = &p, &c

	s := NewSession(uuid.New(), time.Now())
	v := s.Restore(cfg)

	assert.Equal(t, int(StepTexture), v.Step)
	assert.False(t, v.CanProceed)
}

func TestSession_Touch(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := NewSession(uuid.New(), start)
	assert.Equal(t, start, s.CreatedAt())

	later := start.Add(time.Minute)
	s.Touch(later)
	assert.Equal(t, later, s.TouchedAt())
	assert.Equal(t, start, s.CreatedAt())
}

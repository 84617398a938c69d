package services

import (
	"testing"
	"time"

	"github.com/dagger983/Umpire11-Backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEntryAllowsDuplicates(t *testing.T) {
	svc := NewJoinedContestService(setupTestDB(t))

	req := models.CreateJoinedContestRequest{
		ContestTitle: "IPL Mega",
		EntryFee:     49,
		Username:     "alice",
		Mobile:       "9990001111",
		PaymentID:    "pay_abc",
		ContestTime:  "2024-05-01T19:00:00Z",
	}

	first, err := svc.CreateEntry(req)
	require.NoError(t, err)
	second, err := svc.CreateEntry(req)
	require.NoError(t, err)

	// Identical submissions are distinct rows; dedup is not this layer's job.
	assert.NotEqual(t, first.ID, second.ID)

	entries, err := svc.GetAllEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestCreateEntrySkipsContestChecks(t *testing.T) {
	svc := NewJoinedContestService(setupTestDB(t))

	// No contest or user rows exist; the insert still succeeds.
	entry, err := svc.CreateEntry(models.CreateJoinedContestRequest{
		ContestTitle: "Ghost Contest",
		Username:     "nobody",
		Mobile:       "0",
	})
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.False(t, entry.JoinedAt.IsZero())
}

func TestUpdateEntry(t *testing.T) {
	svc := NewJoinedContestService(setupTestDB(t))

	entry, err := svc.CreateEntry(models.CreateJoinedContestRequest{
		ContestTitle: "IPL Mega",
		Username:     "alice",
		Mobile:       "1",
	})
	require.NoError(t, err)

	joinedAt := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	err = svc.UpdateEntry(entry.ID, models.UpdateJoinedContestRequest{
		ContestTitle: "IPL Mega",
		EntryFee:     49,
		Username:     "alice",
		Mobile:       "1",
		PaymentID:    "pay_late",
		JoinedAt:     &joinedAt,
	})
	require.NoError(t, err)

	fetched, err := svc.GetEntryByID(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "pay_late", fetched.PaymentID)
	assert.Equal(t, 49.0, fetched.EntryFee)
	assert.True(t, fetched.JoinedAt.Equal(joinedAt))
}

func TestJoinedContestNotFound(t *testing.T) {
	svc := NewJoinedContestService(setupTestDB(t))

	_, err := svc.GetEntryByID(99)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.UpdateEntry(99, models.UpdateJoinedContestRequest{
		ContestTitle: "x", Username: "y", Mobile: "z",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.DeleteEntry(99), ErrNotFound)
}

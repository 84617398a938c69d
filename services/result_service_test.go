package services

import (
	"testing"

	"github.com/dagger983/Umpire11-Backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCRUD(t *testing.T) {
	svc := NewResultService(setupTestDB(t))

	result, err := svc.CreateResult(models.ResultRequest{
		ContestTitle: "IPL Mega",
		Username:     "alice",
		Mobile:       "9990001111",
		Points:       50,
		Rank:         1,
		Winnings:     1000,
	})
	require.NoError(t, err)
	assert.NotZero(t, result.ID)

	fetched, err := svc.GetResultByID(result.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", fetched.Username)
	assert.Equal(t, 50.0, fetched.Points)
	assert.Equal(t, 1, fetched.Rank)
	assert.Equal(t, 1000.0, fetched.Winnings)

	err = svc.UpdateResult(result.ID, models.ResultRequest{
		ContestTitle: "IPL Mega",
		Username:     "alice",
		Mobile:       "9990001111",
		Points:       62.5,
		Rank:         2,
		Winnings:     500,
	})
	require.NoError(t, err)

	fetched, err = svc.GetResultByID(result.ID)
	require.NoError(t, err)
	assert.Equal(t, 62.5, fetched.Points)
	assert.Equal(t, 2, fetched.Rank)
	assert.Equal(t, 500.0, fetched.Winnings)

	require.NoError(t, svc.DeleteResult(result.ID))
	_, err = svc.GetResultByID(result.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResultNotFound(t *testing.T) {
	svc := NewResultService(setupTestDB(t))

	_, err := svc.GetResultByID(1)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.UpdateResult(1, models.ResultRequest{ContestTitle: "x", Username: "y"})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.DeleteResult(1), ErrNotFound)
}

func TestResultsListEmpty(t *testing.T) {
	svc := NewResultService(setupTestDB(t))

	results, err := svc.GetAllResults()
	require.NoError(t, err)
	assert.Empty(t, results)
}

package services

import (
	"testing"

	"github.com/dagger983/Umpire11-Backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createContest(t *testing.T, svc *ContestService, req models.ContestRequest) *models.Contest {
	t.Helper()
	contest, err := svc.CreateContest(req)
	require.NoError(t, err)
	return contest
}

func TestContestCRUD(t *testing.T) {
	svc := NewContestService(setupTestDB(t))

	contest := createContest(t, svc, models.ContestRequest{
		Title:     "IPL Mega",
		Time:      "2024-05-01T19:00:00Z",
		PrizePool: 100000,
		EntryFee:  49,
		SpotEntry: 100,
		SpotLeft:  100,
		Category:  "mega",
	})

	fetched, err := svc.GetContestByID(contest.ID)
	require.NoError(t, err)
	assert.Equal(t, "IPL Mega", fetched.Title)
	assert.Equal(t, 49.0, fetched.EntryFee)

	err = svc.UpdateContest(contest.ID, models.ContestRequest{
		Title:     "IPL Mega v2",
		Time:      "2024-05-02T19:00:00Z",
		PrizePool: 50000,
		EntryFee:  25,
		SpotEntry: 50,
		SpotLeft:  50,
		Category:  "mega",
	})
	require.NoError(t, err)

	fetched, err = svc.GetContestByID(contest.ID)
	require.NoError(t, err)
	assert.Equal(t, "IPL Mega v2", fetched.Title)
	assert.Equal(t, 25.0, fetched.EntryFee)
	assert.Equal(t, 50, fetched.SpotLeft)

	require.NoError(t, svc.DeleteContest(contest.ID))
	_, err = svc.GetContestByID(contest.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.DeleteContest(contest.ID), ErrNotFound)
}

func TestContestUpdateNotFound(t *testing.T) {
	svc := NewContestService(setupTestDB(t))

	err := svc.UpdateContest(42, models.ContestRequest{Title: "x", Time: "t"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJoinContestDebitsWalletAndTakesSpot(t *testing.T) {
	db := setupTestDB(t)
	contestSvc := NewContestService(db)
	userSvc := NewUserService(db)

	contest := createContest(t, contestSvc, models.ContestRequest{
		Title:    "H2H",
		Time:     "2024-05-01T19:00:00Z",
		EntryFee: 49,
		SpotLeft: 2,
	})
	user, err := userSvc.CreateUser(models.CreateUserRequest{
		Username: "alice",
		Mobile:   "9990001111",
		Wallet:   floatPtr(100),
	})
	require.NoError(t, err)

	entry, err := contestSvc.JoinContest(contest.ID, models.JoinContestRequest{
		Username:  "alice",
		Mobile:    "9990001111",
		PaymentID: "pay_123",
	})
	require.NoError(t, err)
	assert.Equal(t, "H2H", entry.ContestTitle)
	assert.Equal(t, 49.0, entry.EntryFee)
	assert.Equal(t, "pay_123", entry.PaymentID)
	assert.Equal(t, "2024-05-01T19:00:00Z", entry.ContestTime)

	updatedUser, err := userSvc.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 51.0, updatedUser.Wallet)

	updatedContest, err := contestSvc.GetContestByID(contest.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updatedContest.SpotLeft)

	var count int64
	db.Model(&models.JoinedContest{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestJoinContestNotFound(t *testing.T) {
	svc := NewContestService(setupTestDB(t))

	_, err := svc.JoinContest(123, models.JoinContestRequest{Username: "a", Mobile: "1"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJoinContestUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContestService(db)

	contest := createContest(t, svc, models.ContestRequest{
		Title: "H2H", Time: "t", EntryFee: 10, SpotLeft: 2,
	})

	_, err := svc.JoinContest(contest.ID, models.JoinContestRequest{Username: "ghost", Mobile: "0"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJoinContestInsufficientFundsRollsBack(t *testing.T) {
	db := setupTestDB(t)
	contestSvc := NewContestService(db)
	userSvc := NewUserService(db)

	contest := createContest(t, contestSvc, models.ContestRequest{
		Title: "H2H", Time: "t", EntryFee: 99, SpotLeft: 2,
	})
	user, err := userSvc.CreateUser(models.CreateUserRequest{
		Username: "bob", Mobile: "2", Wallet: floatPtr(10),
	})
	require.NoError(t, err)

	_, err = contestSvc.JoinContest(contest.ID, models.JoinContestRequest{Username: "bob", Mobile: "2"})
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// Nothing moved.
	unchangedUser, err := userSvc.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, unchangedUser.Wallet)

	unchangedContest, err := contestSvc.GetContestByID(contest.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, unchangedContest.SpotLeft)

	var count int64
	db.Model(&models.JoinedContest{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestJoinContestFull(t *testing.T) {
	db := setupTestDB(t)
	contestSvc := NewContestService(db)
	userSvc := NewUserService(db)

	contest := createContest(t, contestSvc, models.ContestRequest{
		Title: "Solo", Time: "t", EntryFee: 5, SpotLeft: 1,
	})
	_, err := userSvc.CreateUser(models.CreateUserRequest{
		Username: "carol", Mobile: "3", Wallet: floatPtr(100),
	})
	require.NoError(t, err)

	_, err = contestSvc.JoinContest(contest.ID, models.JoinContestRequest{Username: "carol", Mobile: "3"})
	require.NoError(t, err)

	_, err = contestSvc.JoinContest(contest.ID, models.JoinContestRequest{Username: "carol", Mobile: "3"})
	assert.ErrorIs(t, err, ErrContestFull)

	user, err := userSvc.GetUserByID(1)
	require.NoError(t, err)
	assert.Equal(t, 95.0, user.Wallet, "failed join must not debit the wallet")
}

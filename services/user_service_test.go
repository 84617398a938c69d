package services

import (
	"testing"

	"github.com/dagger983/Umpire11-Backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDefaultsWalletToZero(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	user, err := svc.CreateUser(models.CreateUserRequest{
		Username: "alice",
		Mobile:   "9990001111",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, 0.0, user.Wallet)

	fetched, err := svc.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", fetched.Username)
	assert.Equal(t, "9990001111", fetched.Mobile)
	assert.Equal(t, 0.0, fetched.Wallet)
	assert.Nil(t, fetched.LoginAt)
}

func TestCreateUserIDsIncrease(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	first, err := svc.CreateUser(models.CreateUserRequest{Username: "a", Mobile: "1"})
	require.NoError(t, err)
	second, err := svc.CreateUser(models.CreateUserRequest{Username: "b", Mobile: "2"})
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	_, err := svc.GetUserByID(7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfileReplacesFields(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	user, err := svc.CreateUser(models.CreateUserRequest{
		Username: "bob",
		Mobile:   "777",
		Wallet:   floatPtr(10),
	})
	require.NoError(t, err)

	err = svc.UpdateProfile(user.ID, models.UpdateUserRequest{
		Username: "bob2",
		Mobile:   "888",
		Wallet:   120.5,
	})
	require.NoError(t, err)

	fetched, err := svc.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob2", fetched.Username)
	assert.Equal(t, "888", fetched.Mobile)
	assert.Equal(t, 120.5, fetched.Wallet)
	assert.Nil(t, fetched.LoginAt, "profile update must not record a login")
}

func TestUpdateProfileNotFound(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	err := svc.UpdateProfile(7, models.UpdateUserRequest{
		Username: "bob2",
		Mobile:   "888",
		Wallet:   120.5,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordLoginStampsOnlyLoginAt(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	user, err := svc.CreateUser(models.CreateUserRequest{
		Username: "carol",
		Mobile:   "555",
		Wallet:   floatPtr(42),
	})
	require.NoError(t, err)

	updated, err := svc.RecordLogin(user.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LoginAt)
	assert.Equal(t, "carol", updated.Username)
	assert.Equal(t, 42.0, updated.Wallet)
}

func TestRecordLoginNotFound(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	_, err := svc.RecordLogin(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	user, err := svc.CreateUser(models.CreateUserRequest{Username: "dave", Mobile: "123"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(user.ID))

	_, err = svc.GetUserByID(user.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Second delete is also a miss.
	assert.ErrorIs(t, svc.DeleteUser(user.ID), ErrNotFound)
}

package handlers

import (
	"net/http"
	"testing"

	"github.com/dagger983/Umpire11-Backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRouter(t *testing.T) *gin.Engine {
	t.Helper()

	h := NewUserHandler(services.NewUserService(setupTestDB(t)))

	r := gin.New()
	r.POST("/users", h.CreateUser)
	r.GET("/users", h.GetUsers)
	r.GET("/users/:id", h.GetUser)
	r.PUT("/users/:id", h.UpdateUser)
	r.DELETE("/users/:id", h.DeleteUser)
	r.POST("/users/:id/login", h.RecordLogin)
	return r
}

func TestCreateUserEndpoint(t *testing.T) {
	r := userRouter(t)

	w := performRequest(t, r, http.MethodPost, "/users", gin.H{
		"username": "alice",
		"mobile":   "9990001111",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "User created successfully!", body["message"])
	assert.EqualValues(t, 1, body["id"])
}

func TestCreateUserEndpointMissingMobile(t *testing.T) {
	r := userRouter(t)

	w := performRequest(t, r, http.MethodPost, "/users", gin.H{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserEndpoint(t *testing.T) {
	r := userRouter(t)

	w := performRequest(t, r, http.MethodPost, "/users", gin.H{
		"username": "alice",
		"mobile":   "9990001111",
		"wallet":   250,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, r, http.MethodGet, "/users/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "alice", body["username"])
	assert.EqualValues(t, 250, body["wallet"])
}

func TestGetUserEndpointNotFound(t *testing.T) {
	r := userRouter(t)

	w := performRequest(t, r, http.MethodGet, "/users/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeBody(t, w)["message"])
}

func TestGetUserEndpointBadID(t *testing.T) {
	r := userRouter(t)

	w := performRequest(t, r, http.MethodGet, "/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUserEndpointNotFound(t *testing.T) {
	r := userRouter(t)

	w := performRequest(t, r, http.MethodPut, "/users/42", gin.H{
		"username": "ghost",
		"mobile":   "0",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordLoginEndpoint(t *testing.T) {
	r := userRouter(t)

	w := performRequest(t, r, http.MethodPost, "/users", gin.H{
		"username": "alice",
		"mobile":   "1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, r, http.MethodPost, "/users/1/login", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, decodeBody(t, w)["login_at"])
}

func TestListUsersEmpty(t *testing.T) {
	r := userRouter(t)

	w := performRequest(t, r, http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

package handlers

import (
	"net/http"
	"testing"

	"github.com/dagger983/Umpire11-Backend/models"
	"github.com/dagger983/Umpire11-Backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatsEndpoint(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&models.User{Username: "alice", Mobile: "1"}).Error)
	require.NoError(t, db.Create(&models.User{Username: "bob", Mobile: "2"}).Error)
	require.NoError(t, db.Create(&models.Contest{Title: "IPL Mega"}).Error)
	require.NoError(t, db.Create(&models.JoinedContest{
		ContestTitle: "IPL Mega", Username: "alice", Mobile: "1",
	}).Error)

	h := NewStatsHandler(services.NewStatsService(db))
	r := gin.New()
	r.GET("/stats", h.GetStats)

	w := performRequest(t, r, http.MethodGet, "/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.EqualValues(t, 2, body["total_users"])
	assert.EqualValues(t, 1, body["total_contests"])
	assert.EqualValues(t, 1, body["total_joined"])
	assert.EqualValues(t, 0, body["total_rosters"])
	assert.EqualValues(t, 1, body["joins_last_7_days"])
}

func TestGetBotsEndpoint(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&models.Bot{Name: "Challenger", Level: 2}).Error)

	h := NewBotHandler(services.NewBotService(db))
	r := gin.New()
	r.GET("/api/bots", h.GetBots)

	w := performRequest(t, r, http.MethodGet, "/api/bots", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Challenger")
}

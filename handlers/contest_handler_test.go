package handlers

import (
	"net/http"
	"testing"

	"github.com/dagger983/Umpire11-Backend/models"
	"github.com/dagger983/Umpire11-Backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func contestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	h := NewContestHandler(services.NewContestService(db))

	r := gin.New()
	r.POST("/contests", h.CreateContest)
	r.GET("/contests", h.GetContests)
	r.GET("/contests/:id", h.GetContest)
	r.PUT("/contests/:id", h.UpdateContest)
	r.DELETE("/contests/:id", h.DeleteContest)
	r.POST("/contests/:id/join", h.JoinContest)
	return r, db
}

func TestCreateContestEndpoint(t *testing.T) {
	r, _ := contestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/contests", gin.H{
		"title":      "IPL Mega",
		"time":       "2024-05-01T19:00:00Z",
		"prize_pool": 100000,
		"entry_fee":  49,
		"spot_entry": 100,
		"spot_left":  100,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "IPL Mega", body["title"])
	assert.EqualValues(t, 1, body["id"])
}

func TestCreateContestEndpointMissingTitle(t *testing.T) {
	r, _ := contestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/contests", gin.H{"time": "t"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinContestEndpoint(t *testing.T) {
	r, db := contestRouter(t)

	require.NoError(t, db.Create(&models.User{
		Username: "alice", Mobile: "9990001111", Wallet: 100,
	}).Error)

	w := performRequest(t, r, http.MethodPost, "/contests", gin.H{
		"title": "H2H", "time": "t", "entry_fee": 49, "spot_left": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(t, r, http.MethodPost, "/contests/1/join", gin.H{
		"username": "alice", "mobile": "9990001111", "payment_id": "pay_1",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "H2H", body["contest_title"])
	assert.Equal(t, "pay_1", body["paymentId"])
}

func TestJoinContestEndpointErrors(t *testing.T) {
	r, db := contestRouter(t)

	require.NoError(t, db.Create(&models.User{
		Username: "bob", Mobile: "2", Wallet: 5,
	}).Error)

	w := performRequest(t, r, http.MethodPost, "/contests", gin.H{
		"title": "Full House", "time": "t", "entry_fee": 10, "spot_left": 0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Missing body fields.
	w = performRequest(t, r, http.MethodPost, "/contests/1/join", gin.H{"username": "bob"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown contest.
	w = performRequest(t, r, http.MethodPost, "/contests/99/join", gin.H{
		"username": "bob", "mobile": "2",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// No spots left.
	w = performRequest(t, r, http.MethodPost, "/contests/1/join", gin.H{
		"username": "bob", "mobile": "2",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Open spots but an empty wallet.
	w = performRequest(t, r, http.MethodPost, "/contests", gin.H{
		"title": "Pricey", "time": "t", "entry_fee": 1000, "spot_left": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(t, r, http.MethodPost, "/contests/2/join", gin.H{
		"username": "bob", "mobile": "2",
	})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestListContestsEmpty(t *testing.T) {
	r, _ := contestRouter(t)

	w := performRequest(t, r, http.MethodGet, "/contests", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

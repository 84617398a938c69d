package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dagger983/Umpire11-Backend/models"
	"github.com/dagger983/Umpire11-Backend/services"

	"github.com/gin-gonic/gin"
)

type ContestHandler struct {
	contestService *services.ContestService
}

func NewContestHandler(contestService *services.ContestService) *ContestHandler {
	return &ContestHandler{
		contestService: contestService,
	}
}

// CreateContest creates a contest
// @Summary Create contest
// @Tags contests
// @Accept json
// @Produce json
// @Param contest body models.ContestRequest true "Contest data"
// @Success 201 {object} models.Contest
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /contests [post]
func (h *ContestHandler) CreateContest(c *gin.Context) {
	var req models.ContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contest, err := h.contestService.CreateContest(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contest"})
		return
	}

	c.JSON(http.StatusCreated, contest)
}

// GetContests lists all contests
// @Summary List contests
// @Tags contests
// @Produce json
// @Success 200 {array} models.Contest
// @Failure 500 {object} map[string]string
// @Router /contests [get]
func (h *ContestHandler) GetContests(c *gin.Context) {
	contests, err := h.contestService.GetAllContests()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contests"})
		return
	}

	c.JSON(http.StatusOK, contests)
}

// GetContest fetches one contest
// @Summary Get contest by ID
// @Tags contests
// @Produce json
// @Param id path int true "Contest ID"
// @Success 200 {object} models.Contest
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /contests/{id} [get]
func (h *ContestHandler) GetContest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contest ID"})
		return
	}

	contest, err := h.contestService.GetContestByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Contest not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contest"})
		}
		return
	}

	c.JSON(http.StatusOK, contest)
}

// UpdateContest replaces a contest's editable fields
// @Summary Update contest
// @Tags contests
// @Accept json
// @Produce json
// @Param id path int true "Contest ID"
// @Param contest body models.ContestRequest true "Contest data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /contests/{id} [put]
func (h *ContestHandler) UpdateContest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contest ID"})
		return
	}

	var req models.ContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contestService.UpdateContest(uint(id), req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Contest not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contest"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contest updated successfully"})
}

// DeleteContest removes a contest
// @Summary Delete contest
// @Tags contests
// @Produce json
// @Param id path int true "Contest ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /contests/{id} [delete]
func (h *ContestHandler) DeleteContest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contest ID"})
		return
	}

	if err := h.contestService.DeleteContest(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Contest not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contest"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contest deleted successfully"})
}

// JoinContest atomically enters a user into a contest
// @Summary Join contest
// @Description Takes a spot, debits the entry fee and records the join in one transaction
// @Tags contests
// @Accept json
// @Produce json
// @Param id path int true "Contest ID"
// @Param join body models.JoinContestRequest true "Join data"
// @Success 201 {object} models.JoinedContest
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /contests/{id}/join [post]
func (h *ContestHandler) JoinContest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contest ID"})
		return
	}

	var req models.JoinContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.contestService.JoinContest(uint(id), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Contest or user not found"})
		case errors.Is(err, services.ErrContestFull):
			c.JSON(http.StatusConflict, gin.H{"message": "Contest is full"})
		case errors.Is(err, services.ErrInsufficientFunds):
			c.JSON(http.StatusPaymentRequired, gin.H{"message": "Insufficient wallet balance"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join contest"})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dagger983/Umpire11-Backend/models"
	"github.com/dagger983/Umpire11-Backend/services"

	"github.com/gin-gonic/gin"
)

// JoinedContestHandler serves the legacy decoupled join records. These inserts
// do not touch wallets or spot counts; the atomic path is /contests/:id/join.
type JoinedContestHandler struct {
	joinedService *services.JoinedContestService
}

func NewJoinedContestHandler(joinedService *services.JoinedContestService) *JoinedContestHandler {
	return &JoinedContestHandler{
		joinedService: joinedService,
	}
}

// CreateEntry records a contest join as submitted
// @Summary Record a contest join
// @Tags joined-contests
// @Accept json
// @Produce json
// @Param entry body models.CreateJoinedContestRequest true "Join data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /joined_contests [post]
func (h *JoinedContestHandler) CreateEntry(c *gin.Context) {
	var req models.CreateJoinedContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.joinedService.CreateEntry(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join contest"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": entry.ID, "message": "Contest joined successfully"})
}

// GetEntries lists all join records
// @Summary List joined contests
// @Tags joined-contests
// @Produce json
// @Success 200 {array} models.JoinedContest
// @Failure 500 {object} map[string]string
// @Router /joined_contests [get]
func (h *JoinedContestHandler) GetEntries(c *gin.Context) {
	entries, err := h.joinedService.GetAllEntries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch joined contests"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetEntry fetches one join record
// @Summary Get joined contest by ID
// @Tags joined-contests
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} models.JoinedContest
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /joined_contests/{id} [get]
func (h *JoinedContestHandler) GetEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	entry, err := h.joinedService.GetEntryByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Joined contest not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch joined contest"})
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateEntry replaces a join record
// @Summary Update joined contest
// @Tags joined-contests
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param entry body models.UpdateJoinedContestRequest true "Join data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /joined_contests/{id} [put]
func (h *JoinedContestHandler) UpdateEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	var req models.UpdateJoinedContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.joinedService.UpdateEntry(uint(id), req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Joined contest not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update joined contest"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contest updated successfully"})
}

// DeleteEntry removes a join record
// @Summary Delete joined contest
// @Tags joined-contests
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /joined_contests/{id} [delete]
func (h *JoinedContestHandler) DeleteEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	if err := h.joinedService.DeleteEntry(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Joined contest not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete joined contest"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contest deleted successfully"})
}

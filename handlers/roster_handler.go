package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dagger983/Umpire11-Backend/models"
	"github.com/dagger983/Umpire11-Backend/services"

	"github.com/gin-gonic/gin"
)

type RosterHandler struct {
	rosterService *services.RosterService
}

func NewRosterHandler(rosterService *services.RosterService) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
	}
}

// SubmitRoster saves a user's 11-player lineup
// @Summary Submit roster
// @Tags rosters
// @Accept json
// @Produce json
// @Param roster body models.SubmitRosterRequest true "Roster data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user_selected_team/players [post]
func (h *RosterHandler) SubmitRoster(c *gin.Context) {
	var req models.SubmitRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username, mobile, contest title, and entry fee are required."})
		return
	}

	roster, err := h.rosterService.SubmitRoster(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save team"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team saved successfully!", "teamId": roster.ID})
}

// GetRosters lists all submitted rosters
// @Summary List rosters
// @Tags rosters
// @Produce json
// @Success 200 {array} models.SelectedTeam
// @Failure 500 {object} map[string]string
// @Router /user-players [get]
func (h *RosterHandler) GetRosters(c *gin.Context) {
	rosters, err := h.rosterService.GetAllRosters()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching the teams."})
		return
	}

	// Empty list is a normal answer, not an error.
	c.JSON(http.StatusOK, rosters)
}

// GetRoster fetches one roster
// @Summary Get roster by ID
// @Tags rosters
// @Produce json
// @Param id path int true "Roster ID"
// @Success 200 {object} models.SelectedTeam
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user_selected_team/{id} [get]
func (h *RosterHandler) GetRoster(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roster ID"})
		return
	}

	roster, err := h.rosterService.GetRosterByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team"})
		}
		return
	}

	c.JSON(http.StatusOK, roster)
}

// UpdateRoster replaces a submitted roster
// @Summary Update roster
// @Tags rosters
// @Accept json
// @Produce json
// @Param id path int true "Roster ID"
// @Param roster body models.SubmitRosterRequest true "Roster data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user_selected_team/{id} [put]
func (h *RosterHandler) UpdateRoster(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roster ID"})
		return
	}

	var req models.SubmitRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username, mobile, contest title, and entry fee are required."})
		return
	}

	if err := h.rosterService.UpdateRoster(uint(id), req); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		case errors.Is(err, services.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team updated successfully!"})
}

// DeleteRoster removes a submitted roster
// @Summary Delete roster
// @Tags rosters
// @Produce json
// @Param id path int true "Roster ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user_selected_team/{id} [delete]
func (h *RosterHandler) DeleteRoster(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roster ID"})
		return
	}

	if err := h.rosterService.DeleteRoster(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully!"})
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dagger983/Umpire11-Backend/models"
	"github.com/dagger983/Umpire11-Backend/services"

	"github.com/gin-gonic/gin"
)

// MatchHandler serves both the upcoming and featured match listings.
type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// CreateUpcoming adds an upcoming match
// @Summary Create upcoming match
// @Tags matches
// @Accept json
// @Produce json
// @Param match body models.MatchRequest true "Match data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /upcoming-matches [post]
func (h *MatchHandler) CreateUpcoming(c *gin.Context) {
	var req models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.CreateUpcoming(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create match"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Match added!", "id": match.ID})
}

// GetUpcoming lists upcoming matches
// @Summary List upcoming matches
// @Tags matches
// @Produce json
// @Success 200 {array} models.UpcomingMatch
// @Failure 500 {object} map[string]string
// @Router /upcoming-matches [get]
func (h *MatchHandler) GetUpcoming(c *gin.Context) {
	matches, err := h.matchService.GetAllUpcoming()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch matches"})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetUpcomingByID fetches one upcoming match
// @Summary Get upcoming match by ID
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} models.UpcomingMatch
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /upcoming-matches/{id} [get]
func (h *MatchHandler) GetUpcomingByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	match, err := h.matchService.GetUpcomingByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Match not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch match"})
		}
		return
	}

	c.JSON(http.StatusOK, match)
}

// UpdateUpcoming replaces an upcoming match
// @Summary Update upcoming match
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param match body models.MatchRequest true "Match data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /upcoming-matches/{id} [put]
func (h *MatchHandler) UpdateUpcoming(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	var req models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.matchService.UpdateUpcoming(uint(id), req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Match not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update match"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Match updated!"})
}

// DeleteUpcoming removes an upcoming match
// @Summary Delete upcoming match
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /upcoming-matches/{id} [delete]
func (h *MatchHandler) DeleteUpcoming(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	if err := h.matchService.DeleteUpcoming(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Match not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete match"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Match deleted!"})
}

// CreateFeatured adds a featured match
// @Summary Create featured match
// @Tags matches
// @Accept json
// @Produce json
// @Param match body models.MatchRequest true "Match data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /featured-matches [post]
func (h *MatchHandler) CreateFeatured(c *gin.Context) {
	var req models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.CreateFeatured(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create match"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Match added!", "id": match.ID})
}

// GetFeatured lists featured matches
// @Summary List featured matches
// @Tags matches
// @Produce json
// @Success 200 {array} models.FeaturedMatch
// @Failure 500 {object} map[string]string
// @Router /featured-matches [get]
func (h *MatchHandler) GetFeatured(c *gin.Context) {
	matches, err := h.matchService.GetAllFeatured()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch matches"})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetFeaturedByID fetches one featured match
// @Summary Get featured match by ID
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} models.FeaturedMatch
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /featured-matches/{id} [get]
func (h *MatchHandler) GetFeaturedByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	match, err := h.matchService.GetFeaturedByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Match not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch match"})
		}
		return
	}

	c.JSON(http.StatusOK, match)
}

// UpdateFeatured replaces a featured match
// @Summary Update featured match
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param match body models.MatchRequest true "Match data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /featured-matches/{id} [put]
func (h *MatchHandler) UpdateFeatured(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	var req models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.matchService.UpdateFeatured(uint(id), req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Match not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update match"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Match updated!"})
}

// DeleteFeatured removes a featured match
// @Summary Delete featured match
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /featured-matches/{id} [delete]
func (h *MatchHandler) DeleteFeatured(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	if err := h.matchService.DeleteFeatured(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Match not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete match"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Match deleted!"})
}

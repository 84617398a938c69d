package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dagger983/Umpire11-Backend/models"
	"github.com/dagger983/Umpire11-Backend/services"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	resultService *services.ResultService
}

func NewResultHandler(resultService *services.ResultService) *ResultHandler {
	return &ResultHandler{
		resultService: resultService,
	}
}

// CreateResult records a contest outcome
// @Summary Create result
// @Tags results
// @Accept json
// @Produce json
// @Param result body models.ResultRequest true "Result data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /results [post]
func (h *ResultHandler) CreateResult(c *gin.Context) {
	var req models.ResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.resultService.CreateResult(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create result"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Result created successfully", "id": result.ID})
}

// GetResults lists all results
// @Summary List results
// @Tags results
// @Produce json
// @Success 200 {array} models.Result
// @Failure 500 {object} map[string]string
// @Router /results [get]
func (h *ResultHandler) GetResults(c *gin.Context) {
	results, err := h.resultService.GetAllResults()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch results"})
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetResult fetches one result
// @Summary Get result by ID
// @Tags results
// @Produce json
// @Param id path int true "Result ID"
// @Success 200 {object} models.Result
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /results/{id} [get]
func (h *ResultHandler) GetResult(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid result ID"})
		return
	}

	result, err := h.resultService.GetResultByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Result not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch result"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateResult replaces a result
// @Summary Update result
// @Tags results
// @Accept json
// @Produce json
// @Param id path int true "Result ID"
// @Param result body models.ResultRequest true "Result data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /results/{id} [put]
func (h *ResultHandler) UpdateResult(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid result ID"})
		return
	}

	var req models.ResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.resultService.UpdateResult(uint(id), req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Result not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update result"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Result updated successfully"})
}

// DeleteResult removes a result
// @Summary Delete result
// @Tags results
// @Produce json
// @Param id path int true "Result ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /results/{id} [delete]
func (h *ResultHandler) DeleteResult(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid result ID"})
		return
	}

	if err := h.resultService.DeleteResult(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Result not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete result"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Result deleted successfully"})
}

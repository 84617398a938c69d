package handlers

import (
	"net/http"

	"github.com/dagger983/Umpire11-Backend/services"

	"github.com/gin-gonic/gin"
)

type BotHandler struct {
	botService *services.BotService
}

func NewBotHandler(botService *services.BotService) *BotHandler {
	return &BotHandler{
		botService: botService,
	}
}

// GetBots lists the practice bots
// @Summary List bots
// @Tags bots
// @Produce json
// @Success 200 {array} models.Bot
// @Failure 500 {object} map[string]string
// @Router /api/bots [get]
func (h *BotHandler) GetBots(c *gin.Context) {
	bots, err := h.botService.GetAllBots()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data from bots table"})
		return
	}

	c.JSON(http.StatusOK, bots)
}

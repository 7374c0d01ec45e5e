package handlers

import (
	"net/http"
	"os"

	"inventory-pos/internal/ai"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	agent *ai.Agent
}

func NewAIHandler(agent *ai.Agent) *AIHandler {
	return &AIHandler{agent: agent}
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat forwards an admin question to the assistant.
func (h *AIHandler) Chat(c *gin.Context) {
	var input ChatRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Assistant is not configured"})
		return
	}

	reply, err := h.agent.Run(input.Message, apiKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Assistant request failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

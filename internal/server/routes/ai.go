package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"acadforms/internal/ai"
)

type AIRoutes struct {
	server ServerInterface
}

func NewAIRoutes(server ServerInterface) *AIRoutes {
	return &AIRoutes{server: server}
}

func (ar *AIRoutes) RegisterRoutes(r *gin.Engine) {
	middleware := NewMiddleware(ar.server)

	r.POST("/ai/improve", middleware.AuthMiddleware(), ar.improveTextHandler)
}

type ImproveTextRequest struct {
	Text         string `json:"text"`
	SectionLabel string `json:"sectionLabel"`
}

// improveTextHandler polishes a piece of form text. The feature is advisory:
// when the service is unavailable the original text comes back unchanged.
func (ar *AIRoutes) improveTextHandler(c *gin.Context) {
	var req ImproveTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	improved := ai.Improve(c.Request.Context(), ar.server.GetRewriter(), req.Text, req.SectionLabel)

	c.JSON(http.StatusOK, gin.H{"text": improved})
}

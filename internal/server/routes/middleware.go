package routes

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"acadforms/internal/ai"
	"acadforms/internal/auth"
	"acadforms/internal/cloud"
	"acadforms/internal/database"
	"acadforms/internal/mailer"
	"acadforms/internal/schema"
)

// ServerInterface is what route groups need from the server: the database
// plus the external collaborators behind their interfaces.
type ServerInterface interface {
	GetDB() database.Service
	GetDrive() cloud.Store
	GetSender() mailer.Sender
	GetRewriter() ai.Rewriter
	GetCatalog() *schema.Catalog
}

type Middleware struct {
	server ServerInterface
}

func NewMiddleware(server ServerInterface) *Middleware {
	return &Middleware{server: server}
}

func (m *Middleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userIDRaw := session.Get("user_id")

		if userIDRaw == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		userID, ok := userIDRaw.(int)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Invalid session data"})
			return
		}

		db := m.server.GetDB()
		user, err := db.GetUserByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found or database error"})
			return
		}

		c.Set("user", user) // Store user object in context

		// Make the OAuth access token reachable for outbound Graph calls.
		if token, ok := session.Get("access_token").(string); ok && token != "" {
			c.Request = c.Request.WithContext(auth.WithAccessToken(c.Request.Context(), token))
		}

		c.Next()
	}
}

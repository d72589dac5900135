package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"acadforms/internal/cloud"
)

type DriveRoutes struct {
	server ServerInterface
}

func NewDriveRoutes(server ServerInterface) *DriveRoutes {
	return &DriveRoutes{server: server}
}

func (dr *DriveRoutes) RegisterRoutes(r *gin.Engine) {
	middleware := NewMiddleware(dr.server)

	r.GET("/drive/children", middleware.AuthMiddleware(), dr.listChildrenHandler)
}

// listChildrenHandler lists one level of the drive. Without a path it lists
// the base folder.
func (dr *DriveRoutes) listChildrenHandler(c *gin.Context) {
	path := c.DefaultQuery("path", cloud.BaseFolder)

	items, err := dr.server.GetDrive().ListChildren(c.Request.Context(), path)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to list drive folder"})
		return
	}
	if items == nil {
		items = []cloud.Item{}
	}

	c.JSON(http.StatusOK, gin.H{"path": path, "items": items})
}

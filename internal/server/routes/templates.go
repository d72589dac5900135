package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"acadforms/internal/schema"
)

type TemplateRoutes struct {
	server ServerInterface
}

func NewTemplateRoutes(server ServerInterface) *TemplateRoutes {
	return &TemplateRoutes{server: server}
}

func (tr *TemplateRoutes) RegisterRoutes(r *gin.Engine) {
	middleware := NewMiddleware(tr.server)

	templates := r.Group("/templates")
	templates.Use(middleware.AuthMiddleware())
	{
		templates.GET("", tr.listTemplatesHandler)
		templates.GET("/:templateID", tr.getTemplateHandler)
	}
}

// listTemplatesHandler returns the template catalog in its fixed order.
func (tr *TemplateRoutes) listTemplatesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": tr.server.GetCatalog().List()})
}

func (tr *TemplateRoutes) getTemplateHandler(c *gin.Context) {
	tpl, err := tr.server.GetCatalog().Get(c.Param("templateID"))
	if err != nil {
		if errors.Is(err, schema.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load template"})
		return
	}

	c.JSON(http.StatusOK, tpl)
}

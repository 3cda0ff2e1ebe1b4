package controllers

import (
	"net/http"
	"strings"

	"github.com/amrit073/NEPGA/pkg/resp"
	"github.com/amrit073/NEPGA/utils"
	"github.com/gin-gonic/gin"
)

type PageController struct{ Pages *utils.PageResolver }

func NewPageController(pages *utils.PageResolver) *PageController {
	return &PageController{Pages: pages}
}

// Fallback serves allow-listed pages for any path no route matched.
func (pc *PageController) Fallback(c *gin.Context) {
	p := c.Request.URL.Path
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		resp.NotFound(c, "Not found")
		return
	}
	if p == "/api" || strings.HasPrefix(p, "/api/") {
		resp.NotFound(c, "Not found")
		return
	}

	file, ok := pc.Pages.Resolve(p)
	if !ok {
		resp.NotFound(c, "Page not found")
		return
	}
	c.File(file)
}

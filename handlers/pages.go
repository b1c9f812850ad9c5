package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "session"

// page serves one HTML file from the templates directory.
func (h *Handler) page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.File(filepath.Join(h.templatesDir, name))
	}
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

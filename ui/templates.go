package ui

import (
	"bytes"

	"github.com/gin-gonic/gin"
)

// renderTemplate executes a template into a buffer first so a template error
// produces a clean 500 instead of a half-written page.
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		s.logger.Error("Template error for %s: %v", templateName, err)
		c.AbortWithStatusJSON(500, gin.H{"error": "Template rendering failed", "details": err.Error()})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Writer.WriteHeader(200)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		s.logger.Error("Error writing template response: %v", err)
	}
}

package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func isHTMXRequest(c *gin.Context) bool {
	return strings.EqualFold(c.GetHeader("HX-Request"), "true")
}

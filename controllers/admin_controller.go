package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Savin-AS94/hw05-final/cache"
)

// AdminController exposes the operator surface, currently just the explicit
// page-cache invalidation.
type AdminController struct {
	Cache      cache.Store
	AdminToken string
}

func NewAdminController(store cache.Store, token string) *AdminController {
	return &AdminController{Cache: store, AdminToken: token}
}

// FlushCache drops every cached page. Guarded by the operator token.
func (adc *AdminController) FlushCache(c *gin.Context) {
	if adc.AdminToken == "" || c.GetHeader("X-Admin-Token") != adc.AdminToken {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	if err := adc.Cache.Flush(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to flush cache"})
		return
	}
	log.Info().Msg("page cache flushed")
	c.JSON(http.StatusOK, gin.H{"flushed": true})
}

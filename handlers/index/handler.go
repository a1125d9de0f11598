// Package index serves the service info and health endpoints.
package index

import (
	"net/http"

	"github.com/gin-gonic/gin"
	cs "github.com/webtor-io/common-services"
)

type Handler struct {
	pg *cs.PG
}

func RegisterHandler(r *gin.Engine, pg *cs.PG) {
	h := &Handler{
		pg: pg,
	}
	r.GET("/", h.index)
	r.GET("/health", h.health)
}

func (s *Handler) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "music-video catalog api",
		"tables": []string{
			"work", "music", "video", "style",
			"streaming", "version", "creator", "role",
		},
	})
}

func (s *Handler) health(c *gin.Context) {
	db := s.pg.Get()
	if db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "not initialized"})
		return
	}
	if err := db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "ok"})
}

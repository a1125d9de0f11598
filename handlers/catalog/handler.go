// Package catalog exposes the JSON CRUD admin surface over the seven catalog
// entities.
package catalog

import (
	"github.com/gin-gonic/gin"
	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
	cs "github.com/webtor-io/common-services"

	"github.com/bloggermandolin/catalog/handlers/common"
	"github.com/bloggermandolin/catalog/services/apperr"
)

type Handler struct {
	pg *cs.PG
}

func RegisterHandler(r *gin.Engine, pg *cs.PG) {
	h := &Handler{
		pg: pg,
	}

	r.GET("/works", h.listWorks)
	r.GET("/works/:id", h.getWork)
	r.POST("/works", h.createWork)
	r.PUT("/works/:id", h.updateWork)

	r.GET("/music", h.listMusic)
	r.GET("/music/:id", h.getMusic)
	r.POST("/music", h.createMusic)
	r.PUT("/music/:id", h.updateMusic)

	r.GET("/videos", h.listVideos)
	r.GET("/videos/:id", h.getVideo)
	r.GET("/videos/:id/music", h.getVideoMusic)
	r.POST("/videos", h.createVideo)
	r.PUT("/videos/:id", h.updateVideo)

	r.GET("/styles", h.listStyles)
	r.GET("/styles/:id", h.getStyle)
	r.POST("/styles", h.createStyle)
	r.PUT("/styles/:id", h.updateStyle)

	r.GET("/streamings", h.listStreamings)
	r.GET("/streamings/:id", h.getStreaming)
	r.POST("/streamings", h.createStreaming)
	r.PUT("/streamings/:id", h.updateStreaming)

	r.GET("/versions", h.listVersions)
	r.GET("/versions/:id", h.getVersion)
	r.POST("/versions", h.createVersion)
	r.PUT("/versions/:id", h.updateVersion)

	r.GET("/creators", h.listCreators)
	r.GET("/creators/:id", h.getCreator)
	r.POST("/creators", h.createCreator)
	r.PUT("/creators/:id", h.updateCreator)

	r.GET("/roles", h.listRoles)
	r.GET("/roles/:id", h.getRole)
	r.POST("/roles", h.createRole)
	r.PUT("/roles/:id", h.updateRole)
}

func (s *Handler) db(c *gin.Context) (*pg.DB, bool) {
	db := s.pg.Get()
	if db == nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Persistence, errors.New("db not initialized"), "admin api"))
		return nil, false
	}
	return db, true
}

// Package clone exposes the entity-cloning operation over HTTP.
package clone

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	cs "github.com/webtor-io/common-services"

	"github.com/bloggermandolin/catalog/handlers/common"
	"github.com/bloggermandolin/catalog/models"
	"github.com/bloggermandolin/catalog/services/apperr"
)

type Handler struct {
	pg *cs.PG
}

func RegisterHandler(r *gin.Engine, pg *cs.PG) {
	h := &Handler{
		pg: pg,
	}
	r.POST("/clone/:entity/:id", h.clone)
}

func (s *Handler) clone(c *gin.Context) {
	db := s.pg.Get()
	if db == nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Persistence, errors.New("db not initialized"), "clone"))
		return
	}
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	newID, err := models.Clone(c.Request.Context(), db, models.EntityKind(c.Param("entity")), id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"source_id": id,
		"new_id":    newID,
	})
}

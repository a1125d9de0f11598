package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloggermandolin/catalog/handlers/common"
	"github.com/bloggermandolin/catalog/models"
	"github.com/bloggermandolin/catalog/services/apperr"
)

func (s *Handler) listMusic(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	limit, offset := common.ParsePage(c)
	list, err := models.ListMusic(c.Request.Context(), db, limit, offset)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": list})
}

func (s *Handler) getMusic(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	m, err := models.GetMusic(c.Request.Context(), db, id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": m})
}

func (s *Handler) createMusic(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	m := &models.Music{}
	if err := c.ShouldBindJSON(m); err != nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Precondition, err, "parse music"))
		return
	}
	m.MusicID = 0
	if err := models.InsertMusic(c.Request.Context(), db, m); err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "item": m})
}

func (s *Handler) updateMusic(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	m, err := models.GetMusic(c.Request.Context(), db, id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	if err = c.ShouldBindJSON(m); err != nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Precondition, err, "parse music"))
		return
	}
	m.MusicID = id
	if err = models.UpdateMusic(c.Request.Context(), db, m); err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": m})
}

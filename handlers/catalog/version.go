package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloggermandolin/catalog/handlers/common"
	"github.com/bloggermandolin/catalog/models"
	"github.com/bloggermandolin/catalog/services/apperr"
)

func (s *Handler) listVersions(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	limit, offset := common.ParsePage(c)
	list, err := models.ListVersions(c.Request.Context(), db, limit, offset)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": list})
}

func (s *Handler) getVersion(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	v, err := models.GetVersion(c.Request.Context(), db, id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": v})
}

func (s *Handler) createVersion(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	v := &models.Version{}
	if err := c.ShouldBindJSON(v); err != nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Precondition, err, "parse version"))
		return
	}
	v.ID = 0
	if err := models.InsertVersion(c.Request.Context(), db, v); err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "item": v})
}

func (s *Handler) updateVersion(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	v, err := models.GetVersion(c.Request.Context(), db, id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	if err = c.ShouldBindJSON(v); err != nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Precondition, err, "parse version"))
		return
	}
	v.ID = id
	if err = models.UpdateVersion(c.Request.Context(), db, v); err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": v})
}

package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloggermandolin/catalog/handlers/common"
	"github.com/bloggermandolin/catalog/models"
	"github.com/bloggermandolin/catalog/services/apperr"
)

func (s *Handler) listCreators(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	limit, offset := common.ParsePage(c)
	list, err := models.ListCreators(c.Request.Context(), db, limit, offset)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": list})
}

func (s *Handler) getCreator(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	cr, err := models.GetCreator(c.Request.Context(), db, id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": cr})
}

func (s *Handler) createCreator(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	cr := &models.Creator{}
	if err := c.ShouldBindJSON(cr); err != nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Precondition, err, "parse creator"))
		return
	}
	cr.CreatorID = 0
	if err := models.InsertCreator(c.Request.Context(), db, cr); err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "item": cr})
}

func (s *Handler) updateCreator(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	cr, err := models.GetCreator(c.Request.Context(), db, id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	if err = c.ShouldBindJSON(cr); err != nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Precondition, err, "parse creator"))
		return
	}
	cr.CreatorID = id
	if err = models.UpdateCreator(c.Request.Context(), db, cr); err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": cr})
}

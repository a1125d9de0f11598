package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloggermandolin/catalog/handlers/common"
	"github.com/bloggermandolin/catalog/models"
	"github.com/bloggermandolin/catalog/services/apperr"
)

func (s *Handler) listStyles(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	limit, offset := common.ParsePage(c)
	list, err := models.ListStyles(c.Request.Context(), db, limit, offset)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": list})
}

func (s *Handler) getStyle(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	st, err := models.GetStyle(c.Request.Context(), db, id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": st})
}

func (s *Handler) createStyle(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	st := &models.Style{}
	if err := c.ShouldBindJSON(st); err != nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Precondition, err, "parse style"))
		return
	}
	st.ID = 0
	if err := models.InsertStyle(c.Request.Context(), db, st); err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "item": st})
}

func (s *Handler) updateStyle(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	st, err := models.GetStyle(c.Request.Context(), db, id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	if err = c.ShouldBindJSON(st); err != nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Precondition, err, "parse style"))
		return
	}
	st.ID = id
	if err = models.UpdateStyle(c.Request.Context(), db, st); err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": st})
}

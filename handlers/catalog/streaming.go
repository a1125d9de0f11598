package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloggermandolin/catalog/handlers/common"
	"github.com/bloggermandolin/catalog/models"
	"github.com/bloggermandolin/catalog/services/apperr"
)

func (s *Handler) listStreamings(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	limit, offset := common.ParsePage(c)
	list, err := models.ListStreamings(c.Request.Context(), db, limit, offset)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": list})
}

func (s *Handler) getStreaming(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	st, err := models.GetStreaming(c.Request.Context(), db, id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": st})
}

func (s *Handler) createStreaming(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	st := &models.Streaming{}
	if err := c.ShouldBindJSON(st); err != nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Precondition, err, "parse streaming"))
		return
	}
	st.StreamingID = 0
	if err := models.InsertStreaming(c.Request.Context(), db, st); err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "item": st})
}

func (s *Handler) updateStreaming(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	st, err := models.GetStreaming(c.Request.Context(), db, id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	if err = c.ShouldBindJSON(st); err != nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Precondition, err, "parse streaming"))
		return
	}
	st.StreamingID = id
	if err = models.UpdateStreaming(c.Request.Context(), db, st); err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": st})
}

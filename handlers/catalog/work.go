package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloggermandolin/catalog/handlers/common"
	"github.com/bloggermandolin/catalog/models"
	"github.com/bloggermandolin/catalog/services/apperr"
)

func (s *Handler) listWorks(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	limit, offset := common.ParsePage(c)
	list, err := models.ListWorks(c.Request.Context(), db, limit, offset)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": list})
}

func (s *Handler) getWork(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	w, err := models.GetWork(c.Request.Context(), db, id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": w})
}

func (s *Handler) createWork(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	w := &models.Work{}
	if err := c.ShouldBindJSON(w); err != nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Precondition, err, "parse work"))
		return
	}
	w.WorkID = 0
	if err := models.InsertWork(c.Request.Context(), db, w); err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "item": w})
}

func (s *Handler) updateWork(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	w, err := models.GetWork(c.Request.Context(), db, id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	if err = c.ShouldBindJSON(w); err != nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Precondition, err, "parse work"))
		return
	}
	w.WorkID = id
	if err = models.UpdateWork(c.Request.Context(), db, w); err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": w})
}

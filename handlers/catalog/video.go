package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloggermandolin/catalog/handlers/common"
	"github.com/bloggermandolin/catalog/models"
	"github.com/bloggermandolin/catalog/services/apperr"
)

func (s *Handler) listVideos(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	limit, offset := common.ParsePage(c)
	list, err := models.ListVideos(c.Request.Context(), db, limit, offset)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": list})
}

func (s *Handler) getVideo(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	v, err := models.GetVideo(c.Request.Context(), db, id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": v})
}

// getVideoMusic serves the joined video/style/music record the sync flow
// works from, handy for previewing what will be pushed.
func (s *Handler) getVideoMusic(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	rec, err := models.GetVideoMusic(c.Request.Context(), db, id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": rec})
}

func (s *Handler) createVideo(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	v := &models.Video{}
	if err := c.ShouldBindJSON(v); err != nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Precondition, err, "parse video"))
		return
	}
	v.VideoID = 0
	if err := models.InsertVideo(c.Request.Context(), db, v); err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "item": v})
}

func (s *Handler) updateVideo(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	v, err := models.GetVideo(c.Request.Context(), db, id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	if err = c.ShouldBindJSON(v); err != nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Precondition, err, "parse video"))
		return
	}
	v.VideoID = id
	if err = models.UpdateVideo(c.Request.Context(), db, v); err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": v})
}

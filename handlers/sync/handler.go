// Package sync exposes the YouTube metadata sync flow over HTTP.
package sync

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloggermandolin/catalog/handlers/common"
	"github.com/bloggermandolin/catalog/services/apperr"
	ss "github.com/bloggermandolin/catalog/services/sync"
)

type Handler struct {
	syncer *ss.Syncer
}

func RegisterHandler(r *gin.Engine, syncer *ss.Syncer) {
	h := &Handler{
		syncer: syncer,
	}
	r.POST("/sync/video/:id", h.syncVideo)
	r.POST("/sync/batch", h.syncBatch)
}

func (s *Handler) syncVideo(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	opts := ss.Options{
		SubtitleType: c.Query("subtitle_type"),
	}
	res, err := s.syncer.Sync(c.Request.Context(), id, opts)
	if err != nil {
		c.JSON(common.StatusOf(err), res)
		return
	}
	c.JSON(http.StatusOK, res)
}

type batchRequest struct {
	IDs          []int64 `json:"ids" binding:"required"`
	SubtitleType string  `json:"subtitle_type"`
}

func (s *Handler) syncBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Precondition, err, "parse batch request"))
		return
	}
	res := s.syncer.SyncBatch(c.Request.Context(), req.IDs, ss.Options{
		SubtitleType: req.SubtitleType,
	})
	c.JSON(http.StatusOK, res)
}


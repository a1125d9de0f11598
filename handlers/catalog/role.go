package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloggermandolin/catalog/handlers/common"
	"github.com/bloggermandolin/catalog/models"
	"github.com/bloggermandolin/catalog/services/apperr"
)

func (s *Handler) listRoles(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	limit, offset := common.ParsePage(c)
	list, err := models.ListRoles(c.Request.Context(), db, limit, offset)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": list})
}

func (s *Handler) getRole(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	ro, err := models.GetRole(c.Request.Context(), db, id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": ro})
}

func (s *Handler) createRole(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	ro := &models.Role{}
	if err := c.ShouldBindJSON(ro); err != nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Precondition, err, "parse role"))
		return
	}
	ro.RoleID = 0
	if err := models.InsertRole(c.Request.Context(), db, ro); err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "item": ro})
}

func (s *Handler) updateRole(c *gin.Context) {
	db, ok := s.db(c)
	if !ok {
		return
	}
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	ro, err := models.GetRole(c.Request.Context(), db, id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	if err = c.ShouldBindJSON(ro); err != nil {
		common.AbortWithError(c, apperr.Wrap(apperr.Precondition, err, "parse role"))
		return
	}
	ro.RoleID = id
	if err = models.UpdateRole(c.Request.Context(), db, ro); err != nil {
		common.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": ro})
}

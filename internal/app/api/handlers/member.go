package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitpulse/gymadmin/internal/app/service/member"
	"github.com/fitpulse/gymadmin/pkg/response"
)

// @Summary      List members
// @Description  Paginated member list with optional text search and active filter.
// @Tags         Members
// @Produce      json
// @Security     BearerAuth
// @Param        search    query  string  false  "Matches name, document or email"
// @Param        isActive  query  bool    false  "Filter by active flag"
// @Param        page      query  int     false  "Page (default 1)"
// @Param        limit     query  int     false  "Page size (default 10)"
// @Success      200  {object}  RespListMembers
// @Router       /api/v1/members [get]
func ApiListMembers(svc *member.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := &member.ListMembersRequest{
			Search: c.Query("search"),
			Page:   intQuery(c, "page", 1),
			Limit:  intQuery(c, "limit", 10),
		}
		if v := c.Query("isActive"); v != "" {
			active := v == "true"
			req.IsActive = &active
		}
		res, err := svc.List(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Register member
// @Description  Creates a member; the first due date is one membership interval after registration.
// @Tags         Members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body member.CreateMemberRequest true "Member data"
// @Success      201  {object}  RespMember
// @Router       /api/v1/members [post]
func ApiCreateMember(svc *member.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req member.CreateMemberRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		m, err := svc.Create(c.Request.Context(), &req, time.Now())
		if err != nil {
			writeMemberError(c, err)
			return
		}
		c.JSON(http.StatusCreated, response.OKT(m))
	}
}

// @Summary      Get member
// @Tags         Members
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Member id"
// @Success      200  {object}  RespMember
// @Router       /api/v1/members/{id} [get]
func ApiGetMember(svc *member.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeMemberError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(m))
	}
}

// @Summary      Update member
// @Description  Edits profile fields; payment-derived dates are untouched.
// @Tags         Members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string  true  "Member id"
// @Param        request body member.UpdateMemberRequest true "Member data"
// @Success      200  {object}  RespMember
// @Router       /api/v1/members/{id} [put]
func ApiUpdateMember(svc *member.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req member.UpdateMemberRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		m, err := svc.Update(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			writeMemberError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(m))
	}
}

// @Summary      Deactivate member
// @Tags         Members
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Member id"
// @Success      200  {object}  RespMember
// @Router       /api/v1/members/{id}/deactivate [post]
func ApiDeactivateMember(svc *member.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := svc.Deactivate(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeMemberError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(m))
	}
}

// @Summary      Delete member
// @Tags         Members
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Member id"
// @Success      200  {object}  RespOK
// @Router       /api/v1/members/{id} [delete]
func ApiDeleteMember(svc *member.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeMemberError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func writeMemberError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, member.ErrMemberNotFound):
		c.JSON(http.StatusNotFound, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
	case errors.Is(err, member.ErrDuplicateDocument):
		c.JSON(http.StatusConflict, response.ErrorT[any](response.APIResponseCodeConflict, err.Error()))
	case errors.Is(err, member.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
	}
}

func intQuery(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func RegisterMemberRoutes(r gin.IRouter, svc *member.Service) {
	r.GET("/members", ApiListMembers(svc))
	r.POST("/members", ApiCreateMember(svc))
	r.GET("/members/:id", ApiGetMember(svc))
	r.PUT("/members/:id", ApiUpdateMember(svc))
	r.DELETE("/members/:id", ApiDeleteMember(svc))
	r.POST("/members/:id/deactivate", ApiDeactivateMember(svc))
}

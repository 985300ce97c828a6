package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitpulse/gymadmin/internal/app/service/auth"
	"github.com/fitpulse/gymadmin/pkg/response"
)

// @Summary      List admin users
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  RespListAdmins
// @Router       /api/v1/users [get]
func ApiListAdmins(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		admins, err := svc.ListAdmins(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(admins))
	}
}

// @Summary      Create admin user
// @Tags         Users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body auth.CreateAdminRequest true "Admin data"
// @Success      201  {object}  RespAdmin
// @Router       /api/v1/users [post]
func ApiCreateAdmin(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.CreateAdminRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		admin, err := svc.CreateAdmin(c.Request.Context(), &req)
		if err != nil {
			writeAdminError(c, err)
			return
		}
		c.JSON(http.StatusCreated, response.OKT(admin))
	}
}

// @Summary      Get admin user
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Admin id"
// @Success      200  {object}  RespAdmin
// @Router       /api/v1/users/{id} [get]
func ApiGetAdmin(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := svc.GetAdmin(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeAdminError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(admin))
	}
}

// @Summary      Update admin user
// @Tags         Users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string  true  "Admin id"
// @Param        request body auth.UpdateAdminRequest true "Fields to update"
// @Success      200  {object}  RespAdmin
// @Router       /api/v1/users/{id} [put]
func ApiUpdateAdmin(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.UpdateAdminRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		admin, err := svc.UpdateAdmin(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			writeAdminError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(admin))
	}
}

// @Summary      Delete admin user
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Admin id"
// @Success      200  {object}  RespOK
// @Router       /api/v1/users/{id} [delete]
func ApiDeleteAdmin(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteAdmin(c.Request.Context(), c.Param("id")); err != nil {
			writeAdminError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func writeAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
	case errors.Is(err, auth.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, response.ErrorT[any](response.APIResponseCodeConflict, err.Error()))
	default:
		c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
	}
}

func RegisterAdminUserRoutes(r gin.IRouter, svc *auth.Service) {
	r.GET("/users", ApiListAdmins(svc))
	r.POST("/users", ApiCreateAdmin(svc))
	r.GET("/users/:id", ApiGetAdmin(svc))
	r.PUT("/users/:id", ApiUpdateAdmin(svc))
	r.DELETE("/users/:id", ApiDeleteAdmin(svc))
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitpulse/gymadmin/internal/app/service/auth"
	"github.com/fitpulse/gymadmin/pkg/response"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	Admin AdminBrief `json:"admin"`
}

type AdminBrief struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// @Summary      Admin login
// @Description  Exchanges email and password for a session token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  RespLogin
// @Router       /api/v1/auth/login [post]
func ApiLogin(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		res, err := authSvc.Login(c.Request.Context(), req.Email, req.Password, time.Now())
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, "invalid credentials"))
				return
			}
			c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(LoginResponse{
			Token: res.Token,
			Admin: AdminBrief{ID: res.Admin.ID, Email: res.Admin.Email, Name: res.Admin.Name},
		}))
	}
}

// @Summary      Verify session
// @Description  Returns the admin behind the bearer token.
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  RespVerify
// @Router       /api/v1/auth/verify [get]
func ApiVerify(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// AuthMiddleware already validated the token; load the admin again
		// to return fresh profile data.
		adminID := c.GetString("admin_id")
		admin, err := authSvc.GetAdmin(c.Request.Context(), adminID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, "invalid session"))
			return
		}
		c.JSON(http.StatusOK, response.OKT(AdminBrief{ID: admin.ID, Email: admin.Email, Name: admin.Name}))
	}
}

func RegisterAuthRoutes(public, protected gin.IRouter, authSvc *auth.Service) {
	public.POST("/auth/login", ApiLogin(authSvc))
	protected.GET("/auth/verify", ApiVerify(authSvc))
}

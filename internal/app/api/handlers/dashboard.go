package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitpulse/gymadmin/internal/app/service/dashboard"
	"github.com/fitpulse/gymadmin/pkg/response"
)

// @Summary      Dashboard
// @Description  Month-over-month statistics, due-soon/overdue lists and recent payments.
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  RespDashboard
// @Router       /api/v1/dashboard [get]
func ApiDashboard(svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := svc.Get(c.Request.Context(), time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(d))
	}
}

// @Summary      Payment alerts
// @Description  Active members due within the horizon or already overdue.
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  RespAlerts
// @Router       /api/v1/alerts [get]
func ApiAlerts(svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, err := svc.GetAlerts(c.Request.Context(), time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(a))
	}
}

func RegisterDashboardRoutes(r gin.IRouter, svc *dashboard.Service) {
	r.GET("/dashboard", ApiDashboard(svc))
	r.GET("/alerts", ApiAlerts(svc))
}

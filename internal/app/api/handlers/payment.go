package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitpulse/gymadmin/internal/app/service/payment"
	"github.com/fitpulse/gymadmin/pkg/response"
)

// @Summary      List payments
// @Description  Paginated payment list, newest first, with member summary.
// @Tags         Payments
// @Produce      json
// @Security     BearerAuth
// @Param        memberId  query  string  false  "Filter by member"
// @Param        search    query  string  false  "Matches the member's name or document"
// @Param        page      query  int     false  "Page (default 1)"
// @Param        limit     query  int     false  "Page size (default 10)"
// @Success      200  {object}  RespListPayments
// @Router       /api/v1/payments [get]
func ApiListPayments(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := &payment.ListPaymentsRequest{
			MemberID: c.Query("memberId"),
			Search:   c.Query("search"),
			Page:     intQuery(c, "page", 1),
			Limit:    intQuery(c, "limit", 10),
		}
		res, err := svc.List(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Record payment
// @Description  Records a payment; MONTHLY and ANNUAL payments renew the membership and reactivate the member.
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body payment.CreatePaymentRequest true "Payment data"
// @Success      201  {object}  RespPayment
// @Router       /api/v1/payments [post]
func ApiCreatePayment(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req payment.CreatePaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		p, err := svc.Create(c.Request.Context(), &req, time.Now())
		if err != nil {
			switch {
			case errors.Is(err, payment.ErrMemberNotFound):
				c.JSON(http.StatusNotFound, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
			case errors.Is(err, payment.ErrInvalidAmount), errors.Is(err, payment.ErrInvalidType):
				c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			default:
				c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			}
			return
		}
		c.JSON(http.StatusCreated, response.OKT(p))
	}
}

func RegisterPaymentRoutes(r gin.IRouter, svc *payment.Service) {
	r.GET("/payments", ApiListPayments(svc))
	r.POST("/payments", ApiCreatePayment(svc))
}

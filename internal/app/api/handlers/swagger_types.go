package handlers

import (
	"github.com/fitpulse/gymadmin/internal/app/service/dashboard"
	"github.com/fitpulse/gymadmin/internal/app/service/member"
	"github.com/fitpulse/gymadmin/internal/app/service/payment"
	"github.com/fitpulse/gymadmin/internal/models"
	"github.com/fitpulse/gymadmin/pkg/response"
)

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

// RespLogin wraps LoginResponse in the standard envelope.
type RespLogin struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    LoginResponse            `json:"data"`
}

// RespVerify wraps AdminBrief in the standard envelope.
type RespVerify struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    AdminBrief               `json:"data"`
}

// RespMember wraps a member in the standard envelope.
type RespMember struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.Member            `json:"data"`
}

// RespListMembers wraps a member page in the standard envelope.
type RespListMembers struct {
	Code    response.APIResponseCode   `json:"code"`
	Message string                     `json:"message"`
	Data    member.ListMembersResponse `json:"data"`
}

// RespPayment wraps a payment in the standard envelope.
type RespPayment struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.Payment           `json:"data"`
}

// RespListPayments wraps a payment page in the standard envelope.
type RespListPayments struct {
	Code    response.APIResponseCode     `json:"code"`
	Message string                       `json:"message"`
	Data    payment.ListPaymentsResponse `json:"data"`
}

// RespDashboard wraps the dashboard in the standard envelope.
type RespDashboard struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    dashboard.Dashboard      `json:"data"`
}

// RespAlerts wraps the alert lists in the standard envelope.
type RespAlerts struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    dashboard.Alerts         `json:"data"`
}

// RespAdmin wraps an admin user in the standard envelope.
type RespAdmin struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.Admin             `json:"data"`
}

// RespListAdmins wraps the admin list in the standard envelope.
type RespListAdmins struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.Admin           `json:"data"`
}

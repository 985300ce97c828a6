package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/fitpulse/gymadmin/internal/app/service/member"
)

func TestWriteMemberError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: member.ErrMemberNotFound, wantStatus: http.StatusNotFound},
		{name: "duplicate document", err: member.ErrDuplicateDocument, wantStatus: http.StatusConflict},
		{
			name:       "wrapped validation error",
			err:        fmt.Errorf("%w: monthly fee must not be negative", member.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unexpected storage error",
			err:        errors.New("failed to load member: connection refused"),
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeMemberError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func routeSet(r *gin.Engine) map[string]bool {
	set := map[string]bool{}
	for _, rt := range r.Routes() {
		set[rt.Method+" "+rt.Path] = true
	}
	return set
}

func TestRegisterMemberRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/api/v1")
	RegisterMemberRoutes(g, nil)

	routes := routeSet(r)
	require.True(t, routes["GET /api/v1/members"])
	require.True(t, routes["POST /api/v1/members"])
	require.True(t, routes["GET /api/v1/members/:id"])
	require.True(t, routes["PUT /api/v1/members/:id"])
	require.True(t, routes["DELETE /api/v1/members/:id"])
	require.True(t, routes["POST /api/v1/members/:id/deactivate"])
}

func TestRegisterPaymentRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/api/v1")
	RegisterPaymentRoutes(g, nil)

	routes := routeSet(r)
	require.True(t, routes["GET /api/v1/payments"])
	require.True(t, routes["POST /api/v1/payments"])
}

func TestRegisterDashboardRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/api/v1")
	RegisterDashboardRoutes(g, nil)

	routes := routeSet(r)
	require.True(t, routes["GET /api/v1/dashboard"])
	require.True(t, routes["GET /api/v1/alerts"])
}

func TestRegisterAdminUserRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/api/v1")
	RegisterAdminUserRoutes(g, nil)

	routes := routeSet(r)
	require.True(t, routes["GET /api/v1/users"])
	require.True(t, routes["POST /api/v1/users"])
	require.True(t, routes["GET /api/v1/users/:id"])
	require.True(t, routes["PUT /api/v1/users/:id"])
	require.True(t, routes["DELETE /api/v1/users/:id"])
}

func TestRegisterAuthRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pub := r.Group("/api/v1")
	prot := r.Group("/api/v1")
	RegisterAuthRoutes(pub, prot, nil)

	routes := routeSet(r)
	require.True(t, routes["POST /api/v1/auth/login"])
	require.True(t, routes["GET /api/v1/auth/verify"])
}

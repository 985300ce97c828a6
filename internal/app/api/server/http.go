package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/fitpulse/gymadmin/docs"
	"github.com/fitpulse/gymadmin/internal/app/api/handlers"
	mw "github.com/fitpulse/gymadmin/internal/app/api/middleware"
	authsvc "github.com/fitpulse/gymadmin/internal/app/service/auth"
	dashsvc "github.com/fitpulse/gymadmin/internal/app/service/dashboard"
	membersvc "github.com/fitpulse/gymadmin/internal/app/service/member"
	paymentsvc "github.com/fitpulse/gymadmin/internal/app/service/payment"
	cfgpkg "github.com/fitpulse/gymadmin/pkg/config"
	metrics "github.com/fitpulse/gymadmin/pkg/metrics"
)

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Add request tracing middleware only; request logger & access log are attached per group in registerRoutes
	r.Use(mw.TraceMiddleware())
	return r
}

func registerRoutes(r *gin.Engine, log *zap.SugaredLogger, cfg *cfgpkg.Config,
	auth *authsvc.Service, members *membersvc.Service, payments *paymentsvc.Service, dash *dashsvc.Service) {
	// Prometheus metrics
	if cfg != nil && cfg.MetricsAddr != "" {
		p := metrics.NewPrometheus(metrics.NewPrometheusOptions{
			ReqCntURLLabelMappingFn: func(c *gin.Context) string {
				if fp := c.FullPath(); fp != "" {
					return fp
				}
				return c.Request.URL.Path
			},
			Logger: log,
		})
		p.SetListenAddress(cfg.MetricsAddr)
		p.Use(r)
		metrics.RegisterDomain(log)

		log.Infow("metrics started", "addr", cfg.MetricsAddr)
	}

	// Public group: request logger + access log
	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware())
	handlers.RegisterHealthRoutes(pub)
	// Swagger UI
	docs.SwaggerInfo.BasePath = "/"
	pub.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Login is the only unauthenticated API endpoint
	apiPublic := r.Group("/api/v1")
	apiPublic.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware())

	// Everything else requires an admin session
	apiV1 := r.Group("/api/v1")
	apiV1.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware(), mw.AuthMiddleware(auth))

	handlers.RegisterAuthRoutes(apiPublic, apiV1, auth)
	handlers.RegisterMemberRoutes(apiV1, members)
	handlers.RegisterPaymentRoutes(apiV1, payments)
	handlers.RegisterDashboardRoutes(apiV1, dash)
	handlers.RegisterAdminUserRoutes(apiV1, auth)
}

func runServer(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, r *gin.Engine) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting HTTP server", "addr", addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Errorf("server error: %v", err)
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 120*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(newEngine),
	fx.Invoke(registerRoutes),
	fx.Invoke(runServer),
)

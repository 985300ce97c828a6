package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/fitpulse/gymadmin/internal/app/api/server"
	"github.com/fitpulse/gymadmin/internal/app/service/auth"
	"github.com/fitpulse/gymadmin/internal/app/service/dashboard"
	"github.com/fitpulse/gymadmin/internal/app/service/member"
	"github.com/fitpulse/gymadmin/internal/app/service/payment"
	"github.com/fitpulse/gymadmin/internal/platform/db"
	"github.com/fitpulse/gymadmin/pkg/config"
	"github.com/fitpulse/gymadmin/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	server.Module,
	auth.Module,
	member.Module,
	payment.Module,
	dashboard.Module,
)

package dashboard

import "go.uber.org/fx"

// Module exposes the dashboard service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)

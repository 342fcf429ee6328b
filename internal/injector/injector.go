//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"
	"github.com/zeusync/geometry/internal/core/observability/log"
	"github.com/zeusync/geometry/pkg/config"
	"github.com/zeusync/geometry/pkg/diagnostics"
)

// InitializeReporter builds the diagnostics reporter for cfg.
func InitializeReporter(cfg *config.Config) (*diagnostics.LogReporter, error) {
	wire.Build(
		diagnostics.Setup,
		wire.Bind(new(log.Log), new(*log.Logger)),
		diagnostics.NewLogReporter,
	)
	return nil, nil
}

package diagnostics

import (
	"github.com/zeusync/geometry/internal/core/observability/log"
	"github.com/zeusync/geometry/pkg/config"
	"github.com/zeusync/geometry/pkg/geom"
)

var _ geom.Reporter = (*LogReporter)(nil)

// LogReporter forwards degenerate geometry reports to a structured logger.
type LogReporter struct {
	logger log.Log
}

func NewLogReporter(logger log.Log) *LogReporter {
	return &LogReporter{logger: logger.With(log.String("component", "geom"))}
}

func (r *LogReporter) Degenerate(op string, err error) {
	r.logger.Warn("degenerate geometry", log.String("op", op), log.Error(err))
}

// Setup builds the logger described by cfg and installs a LogReporter into
// geom when diagnostics are enabled. Otherwise any installed reporter is removed.
func Setup(cfg *config.Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger, err := log.New(level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}
	Install(cfg, logger)
	return logger, nil
}

// Install wires logger into geom according to cfg.
func Install(cfg *config.Config, logger log.Log) {
	if !cfg.Diagnostics.Enabled {
		geom.SetReporter(nil)
		return
	}
	geom.SetReporter(NewLogReporter(logger))
}

package logger

import (
	"autoflow/internal/config"
	"autoflow/internal/database"

	"go.uber.org/zap"
)

// NewLogger builds the application logger: console output plus an async
// Mongo sink fed through a wrapped core.
func NewLogger(cfg *config.Config, mongodb *database.MongodbDB) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Environment == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	// Enable Caller to get Function Name
	zapConfig.EncoderConfig.FunctionKey = "func"

	baseLogger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	writer := NewLogWriter(mongodb, cfg)
	finalCore := NewMongoCore(baseLogger.Core(), writer)

	return zap.New(finalCore, zap.AddCaller()), nil
}

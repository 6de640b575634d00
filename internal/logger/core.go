package logger

import (
	"go.uber.org/zap/zapcore"
)

// MongoCore is a custom Zap Core that intercepts logs
type MongoCore struct {
	zapcore.Core
	writer *LogWriter
}

// NewMongoCore wraps an existing core (like console logger) and adds Mongo logging
func NewMongoCore(baseCore zapcore.Core, writer *LogWriter) zapcore.Core {
	return &MongoCore{
		Core:   baseCore,
		writer: writer,
	}
}

// Write is called for every log entry
func (c *MongoCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	// entry.Caller.Function requires Zap to be configured with AddCaller()
	c.writer.AddLog(LogEntry{
		Level:   entry.Level,
		Message: entry.Message,
		Caller:  entry.Caller.Function,
	})

	// Call the underlying core (so it still prints to Console/File)
	return c.Core.Write(entry, fields)
}

// Check decides if we should log this level
func (c *MongoCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

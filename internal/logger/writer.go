package logger

import (
	"context"
	"fmt"
	"time"

	"autoflow/internal/config"
	"autoflow/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap/zapcore"
)

// LogEntry holds the data passed from Zap to our worker
type LogEntry struct {
	Level   zapcore.Level
	Message string
	Caller  string // Function name
}

// LogWriter handles the async writing
type LogWriter struct {
	db      *mongo.Database
	logChan chan LogEntry
	appId   string
}

// NewLogWriter initializes the worker
func NewLogWriter(mongodb *database.MongodbDB, cfg *config.Config) *LogWriter {
	writer := &LogWriter{
		db:      mongodb.DB,
		logChan: make(chan LogEntry, 1000), // Buffer 1000 logs
		appId:   cfg.AppId,
	}

	// Start the background worker immediately
	go writer.processLogs()

	return writer
}

// AddLog is called by our Zap hook
func (w *LogWriter) AddLog(entry LogEntry) {
	select {
	case w.logChan <- entry:
		// Log pushed to channel
	default:
		// Channel full: drop log to prevent blocking the API
		fmt.Println("Log channel full! Dropping log:", entry.Message)
	}
}

func (w *LogWriter) processLogs() {
	for entry := range w.logChan {
		record := bson.M{
			"app_id":         w.appId,
			"level":          entry.Level.String(),
			"message":        entry.Message,
			"caller":         entry.Caller,
			"created_on_utc": time.Now().UTC(),
		}

		// Insert into DB (safely ignore errors to keep app running)
		w.db.Collection("logs").InsertOne(context.Background(), record)
	}
}

package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SqlWriter persists zerolog events into log_entries.
type SqlWriter struct {
	db *gorm.DB
}

var _ io.Writer = (*SqlWriter)(nil)

func NewSqlWriter(db *gorm.DB) *SqlWriter {
	return &SqlWriter{db: db}
}

func (l *SqlWriter) Write(p []byte) (n int, err error) {
	var evt map[string]interface{}
	d := json.NewDecoder(bytes.NewReader(p))
	d.UseNumber()
	err = d.Decode(&evt)
	if err != nil {
		return 0, fmt.Errorf("cannot decode event: %s", err)
	}

	// Extract fields
	level, _ := evt[zerolog.LevelFieldName].(string)
	message, _ := evt[zerolog.MessageFieldName].(string)
	caller, _ := evt[zerolog.CallerFieldName].(string)
	timestamp := eventTime(evt[zerolog.TimestampFieldName])

	// Remove standard fields to store remaining as JSON
	delete(evt, zerolog.LevelFieldName)
	delete(evt, zerolog.TimestampFieldName)
	delete(evt, zerolog.MessageFieldName)
	delete(evt, zerolog.CallerFieldName)

	if len(evt) == 0 {
		evt = nil
	}

	// Format caller to relative path
	var formattedCaller *string
	if caller != "" {
		if cwd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(cwd, caller); err == nil {
				formattedCaller = &rel
			}
		}
	}

	entry := LogEntry{
		Level:     level,
		Timestamp: timestamp,
		Caller:    formattedCaller,
		Message:   message,
		Fields:    evt,
	}

	if err = l.db.Create(&entry).Error; err != nil {
		fmt.Println("Error inserting log into DB:", err)
	}

	return len(p), nil
}

// eventTime reads zerolog's timestamp as unix seconds, whichever
// TimeFieldFormat produced it.
func eventTime(v interface{}) int64 {
	switch ts := v.(type) {
	case json.Number:
		if sec, err := ts.Int64(); err == nil {
			return sec
		}
	case string:
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			return t.Unix()
		}
	}

	return time.Now().Unix()
}

package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func TestSqlWriterPersistsEvents(t *testing.T) {
	db := openTestDB(t)

	logger := zerolog.New(NewSqlWriter(db)).With().Timestamp().Logger()
	logger.Info().Str("inquiry_id", "7").Msg("Inquiry 7 updated")
	logger.Warn().Msg("Invalid admin password")

	nop := zerolog.Nop()
	logs := NewLogStore(db, &nop)

	all, err := logs.GetPaginatedLogs(context.Background(), uuid.New(), 1, 10, "")
	if err != nil {
		t.Fatalf("get logs: %v", err)
	}
	if all.TotalCount != 2 || len(all.Result) != 2 {
		t.Fatalf("logs = total %d len %d, want 2/2", all.TotalCount, len(all.Result))
	}

	warn, err := logs.GetPaginatedLogs(context.Background(), uuid.New(), 1, 10, "warn")
	if err != nil {
		t.Fatalf("get warn logs: %v", err)
	}
	if warn.TotalCount != 1 || warn.Result[0].Message != "Invalid admin password" {
		t.Fatalf("warn logs = %+v", warn)
	}

	info, err := logs.GetPaginatedLogs(context.Background(), uuid.New(), 1, 10, "info")
	if err != nil {
		t.Fatalf("get info logs: %v", err)
	}
	if info.TotalCount != 1 {
		t.Fatalf("info total = %d, want 1", info.TotalCount)
	}
	entry := info.Result[0]
	if entry.Fields["inquiry_id"] != "7" {
		t.Fatalf("fields = %v, want inquiry_id=7", entry.Fields)
	}
	if entry.Timestamp == 0 {
		t.Fatal("timestamp not recorded")
	}
}

func TestSqlWriterRejectsNonJSON(t *testing.T) {
	w := NewSqlWriter(openTestDB(t))

	if _, err := w.Write([]byte("not json")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestEventTime(t *testing.T) {
	if got := eventTime("2026-10-18T09:30:00Z"); got != 1792315800 {
		t.Fatalf("rfc3339 = %d", got)
	}
	if got := eventTime(json.Number("1700000000")); got != 1700000000 {
		t.Fatalf("unix = %d", got)
	}
	if got := eventTime(nil); got == 0 {
		t.Fatal("missing timestamp should fall back to now")
	}
}

package store

import (
	"reflect"
	"testing"
)

func TestNewUpdateSet(t *testing.T) {
	tests := []struct {
		name          string
		fields        []Field
		columns       []string
		timestampOnly bool
	}{
		{
			name:          "no fields",
			columns:       []string{"updated_at"},
			timestampOnly: true,
		},
		{
			name: "absent fields are dropped",
			fields: []Field{
				{Column: "status", Value: "", Present: false},
				{Column: "notes", Value: nil, Present: false},
			},
			columns:       []string{"updated_at"},
			timestampOnly: true,
		},
		{
			name: "empty notes still counts",
			fields: []Field{
				{Column: "status", Value: "", Present: false},
				{Column: "notes", Value: "", Present: true},
			},
			columns: []string{"notes", "updated_at"},
		},
		{
			name: "status and notes",
			fields: []Field{
				{Column: "status", Value: "contacted", Present: true},
				{Column: "notes", Value: "called back", Present: true},
			},
			columns: []string{"status", "notes", "updated_at"},
		},
		{
			name: "repeated column keeps last value once",
			fields: []Field{
				{Column: "status", Value: "contacted", Present: true},
				{Column: "status", Value: "completed", Present: true},
			},
			columns: []string{"status", "updated_at"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NewUpdateSet(tt.fields...)

			if got := set.Columns(); !reflect.DeepEqual(got, tt.columns) {
				t.Fatalf("columns = %v, want %v", got, tt.columns)
			}
			if set.Len() != len(tt.columns) {
				t.Fatalf("len = %d, want %d", set.Len(), len(tt.columns))
			}
			if set.TimestampOnly() != tt.timestampOnly {
				t.Fatalf("timestampOnly = %v, want %v", set.TimestampOnly(), tt.timestampOnly)
			}
			if _, ok := set.Values()["updated_at"]; !ok {
				t.Fatal("updated_at refresh missing")
			}
		})
	}
}

func TestNewUpdateSetLastValueWins(t *testing.T) {
	set := NewUpdateSet(
		Field{Column: "status", Value: "contacted", Present: true},
		Field{Column: "status", Value: "completed", Present: true},
	)

	if got := set.Values()["status"]; got != "completed" {
		t.Fatalf("status = %v, want completed", got)
	}
}

package store

import (
	"errors"

	"gorm.io/gorm"
)

const updatedAtColumn = "updated_at"

// ErrNothingToUpdate is returned when an UpdateSet would only refresh updated_at.
var ErrNothingToUpdate = errors.New("nothing to update")

// Field is one candidate column of a partial update.
type Field struct {
	Column  string
	Value   interface{}
	Present bool
}

// UpdateSet is the column -> value map of a partial update. It always carries
// an updated_at refresh, so a set with a single entry touches nothing else.
type UpdateSet struct {
	values  map[string]interface{}
	columns []string
}

func NewUpdateSet(fields ...Field) UpdateSet {
	set := UpdateSet{values: make(map[string]interface{}, len(fields)+1)}

	for _, f := range fields {
		if !f.Present {
			continue
		}
		if _, ok := set.values[f.Column]; !ok {
			set.columns = append(set.columns, f.Column)
		}
		set.values[f.Column] = f.Value
	}

	set.values[updatedAtColumn] = gorm.Expr("CURRENT_TIMESTAMP")
	set.columns = append(set.columns, updatedAtColumn)

	return set
}

// Len counts queued columns, updated_at included.
func (u UpdateSet) Len() int {
	return len(u.columns)
}

// TimestampOnly reports whether updated_at is the only queued column.
func (u UpdateSet) TimestampOnly() bool {
	return u.Len() == 1
}

// Columns returns queued column names in the order they were added.
func (u UpdateSet) Columns() []string {
	out := make([]string, len(u.columns))
	copy(out, u.columns)
	return out
}

// Values returns the map handed to gorm's Updates.
func (u UpdateSet) Values() map[string]interface{} {
	return u.values
}

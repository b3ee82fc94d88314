package store

import (
	"errors"
	"time"
)

// log field keys shared by every store
const (
	MethodStrHelper = "method"
	RequestID       = "request_id"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Inquiry statuses. The create path never sets one; the column default is pending.
const (
	StatusPending   = "pending"
	StatusContacted = "contacted"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Inquiry struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ChildBirthday string    `gorm:"not null" json:"child_birthday"`
	ParentName    string    `gorm:"not null" json:"parent_name"`
	PhoneNumber   string    `gorm:"not null" json:"phone_number"`
	Agree1        int       `gorm:"not null;default:0" json:"agree1"`
	Agree2        int       `gorm:"not null;default:0" json:"agree2"`
	Agree3        int       `gorm:"not null;default:0" json:"agree3"`
	Source        *string   `json:"source"`
	Status        string    `gorm:"index;default:'pending'" json:"status"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Admin is the single shared credential row, always id 1.
type Admin struct {
	ID       int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Password string `gorm:"not null" json:"-"`
}

func (Admin) TableName() string {
	return "admin"
}

type LogEntry struct {
	ID        int64                  `gorm:"primaryKey;autoIncrement" json:"id"`
	Level     string                 `gorm:"index" json:"level"`
	Timestamp int64                  `gorm:"index" json:"timestamp"`
	Caller    *string                `json:"caller"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `gorm:"type:text;serializer:json" json:"fields"`
}

// Stats holds per-status counts and the distinct non-empty sources.
type Stats struct {
	Total     int64    `json:"total"`
	Pending   int64    `json:"pending"`
	Contacted int64    `json:"contacted"`
	Completed int64    `json:"completed"`
	Cancelled int64    `json:"cancelled"`
	Sources   []string `json:"sources"`
}

// PaginatedResult holds the paginated query results
type PaginatedResult[T any] struct {
	Result     T     `json:"result"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
}

// TotalPages is ceil(TotalCount/PageSize).
func (p PaginatedResult[T]) TotalPages() int64 {
	if p.PageSize <= 0 {
		return 0
	}
	size := int64(p.PageSize)
	return (p.TotalCount + size - 1) / size
}

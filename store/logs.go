package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type LogsInterface interface {
	GetPaginatedLogs(ctx context.Context, requestID uuid.UUID, page, pageSize int, levelFilter string) (PaginatedResult[[]LogEntry], error)
}

type LogStore struct {
	db  *gorm.DB
	log *zerolog.Logger
}

func NewLogStore(db *gorm.DB, log *zerolog.Logger) LogsInterface {
	return &LogStore{
		db:  db,
		log: log,
	}
}

var _ LogsInterface = (*LogStore)(nil)

func (l *LogStore) GetPaginatedLogs(ctx context.Context, requestID uuid.UUID, page, pageSize int, levelFilter string) (PaginatedResult[[]LogEntry], error) {
	log := l.log.With().
		Str(MethodStrHelper, "logs.GetPaginatedLogs").
		Str(RequestID, requestID.String()).
		Logger()

	log.Debug().Msg("Got a request to get paginated logs")

	offset := (page - 1) * pageSize
	result := PaginatedResult[[]LogEntry]{
		Result:   []LogEntry{},
		Page:     page,
		PageSize: pageSize,
	}

	// Count total logs
	countQuery := l.db.WithContext(ctx).Model(&LogEntry{})
	if levelFilter != "" {
		countQuery = countQuery.Where("level = ?", levelFilter)
	}

	if err := countQuery.Count(&result.TotalCount).Error; err != nil {
		log.Err(err).Msg("Failed to count logs")
		return result, err
	}

	// Query logs with pagination
	query := l.db.WithContext(ctx).Model(&LogEntry{}).Order("timestamp DESC, id DESC").Limit(pageSize).Offset(offset)
	if levelFilter != "" {
		query = query.Where("level = ?", levelFilter)
	}

	if err := query.Find(&result.Result).Error; err != nil {
		log.Err(err).Msg("Failed to get paginated logs")
		return result, err
	}

	return result, nil
}

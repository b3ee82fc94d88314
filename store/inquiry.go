package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// StatusAll disables the status filter of List.
const StatusAll = "all"

// SUM over an empty table is NULL
type statusCounts struct {
	Total     sql.NullInt64
	Pending   sql.NullInt64
	Contacted sql.NullInt64
	Completed sql.NullInt64
	Cancelled sql.NullInt64
}

type InquiryInterface interface {
	Create(ctx context.Context, requestID uuid.UUID, payload Inquiry) (*Inquiry, error)
	GetByID(ctx context.Context, requestID uuid.UUID, id int64) (*Inquiry, error)
	List(ctx context.Context, requestID uuid.UUID, status string, page, pageSize int) (PaginatedResult[[]Inquiry], error)
	Update(ctx context.Context, requestID uuid.UUID, id int64, set UpdateSet) error
	Delete(ctx context.Context, requestID uuid.UUID, id int64) error
	Stats(ctx context.Context, requestID uuid.UUID) (Stats, error)
}

// Compile-time check
var _ InquiryInterface = (*InquiryStore)(nil)

type InquiryStore struct {
	db     *gorm.DB
	logger *zerolog.Logger
}

func NewInquiryStore(logger *zerolog.Logger, db *gorm.DB) InquiryInterface {
	return &InquiryStore{
		logger: logger,
		db:     db,
	}
}

func (i *InquiryStore) Create(ctx context.Context, requestID uuid.UUID, payload Inquiry) (*Inquiry, error) {
	log := i.logger.With().
		Str(MethodStrHelper, "inquiry.Create").
		Str(RequestID, requestID.String()).
		Logger()

	log.Info().Msg("Got a request to create inquiry")

	// id and timestamps belong to the datastore
	payload.ID = 0

	if err := i.db.WithContext(ctx).Create(&payload).Error; err != nil {
		log.Err(err).Msg("Failed to create inquiry")
		return nil, err
	}

	return &payload, nil
}

func (i *InquiryStore) GetByID(ctx context.Context, requestID uuid.UUID, id int64) (*Inquiry, error) {
	log := i.logger.With().
		Str(MethodStrHelper, "inquiry.GetByID").
		Str(RequestID, requestID.String()).
		Logger()

	log.Info().Msgf("Got a request to get inquiry %d", id)

	var inquiry Inquiry

	if err := i.db.WithContext(ctx).Where("id = ?", id).Take(&inquiry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Err(err).Msg("Failed to get inquiry by id")
		return nil, err
	}

	return &inquiry, nil
}

func (i *InquiryStore) List(ctx context.Context, requestID uuid.UUID, status string, page, pageSize int) (PaginatedResult[[]Inquiry], error) {
	log := i.logger.With().
		Str(MethodStrHelper, "inquiry.List").
		Str(RequestID, requestID.String()).
		Logger()

	log.Info().Msgf("Got a request to list inquiries with status %s", status)

	offset := (page - 1) * pageSize
	result := PaginatedResult[[]Inquiry]{
		Result:   []Inquiry{},
		Page:     page,
		PageSize: pageSize,
	}

	filter := func(q *gorm.DB) *gorm.DB {
		if status != StatusAll {
			return q.Where("status = ?", status)
		}
		return q
	}

	if err := filter(i.db.WithContext(ctx).Model(&Inquiry{})).
		Order("created_at DESC, id DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&result.Result).Error; err != nil {
		log.Err(err).Msg("Failed to list inquiries")
		return result, err
	}

	if err := filter(i.db.WithContext(ctx).Model(&Inquiry{})).Count(&result.TotalCount).Error; err != nil {
		log.Err(err).Msg("Failed to count inquiries")
		return result, err
	}

	return result, nil
}

func (i *InquiryStore) Update(ctx context.Context, requestID uuid.UUID, id int64, set UpdateSet) error {
	log := i.logger.With().
		Str(MethodStrHelper, "inquiry.Update").
		Str(RequestID, requestID.String()).
		Logger()

	log.Info().Msgf("Got a request to update inquiry %d columns %v", id, set.Columns())

	if set.TimestampOnly() {
		return ErrNothingToUpdate
	}

	if err := i.db.WithContext(ctx).
		Model(&Inquiry{}).
		Where("id = ?", id).
		Updates(set.Values()).Error; err != nil {
		log.Err(err).Msg("Failed to update inquiry")
		return err
	}

	return nil
}

// Delete does not check that the row existed.
func (i *InquiryStore) Delete(ctx context.Context, requestID uuid.UUID, id int64) error {
	log := i.logger.With().
		Str(MethodStrHelper, "inquiry.Delete").
		Str(RequestID, requestID.String()).
		Logger()

	log.Info().Msgf("Got request to delete inquiry %d", id)

	if err := i.db.WithContext(ctx).Where("id = ?", id).Delete(&Inquiry{}).Error; err != nil {
		log.Err(err).Msg("Failed to delete inquiry")
		return err
	}

	return nil
}

func (i *InquiryStore) Stats(ctx context.Context, requestID uuid.UUID) (Stats, error) {
	log := i.logger.With().
		Str(MethodStrHelper, "inquiry.Stats").
		Str(RequestID, requestID.String()).
		Logger()

	log.Info().Msg("Got a request to get inquiry stats")

	stats := Stats{Sources: []string{}}

	var counts statusCounts

	if err := i.db.WithContext(ctx).
		Model(&Inquiry{}).
		Select(`COUNT(*) AS total,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS pending,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS contacted,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS completed,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS cancelled`,
			StatusPending, StatusContacted, StatusCompleted, StatusCancelled).
		Scan(&counts).Error; err != nil {
		log.Err(err).Msg("Failed to count inquiries by status")
		return stats, err
	}

	stats.Total = counts.Total.Int64
	stats.Pending = counts.Pending.Int64
	stats.Contacted = counts.Contacted.Int64
	stats.Completed = counts.Completed.Int64
	stats.Cancelled = counts.Cancelled.Int64

	if err := i.db.WithContext(ctx).
		Model(&Inquiry{}).
		Where("source IS NOT NULL AND source <> ''").
		Distinct().
		Order("source").
		Pluck("source", &stats.Sources).Error; err != nil {
		log.Err(err).Msg("Failed to list inquiry sources")
		return Stats{Sources: []string{}}, err
	}

	if stats.Sources == nil {
		stats.Sources = []string{}
	}

	return stats, nil
}

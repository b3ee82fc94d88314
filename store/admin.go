package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AdminID is the id of the only admin row.
const AdminID int64 = 1

type AdminInterface interface {
	Get(ctx context.Context, requestID uuid.UUID) (*Admin, error)
	Create(ctx context.Context, requestID uuid.UUID, password string) error
	UpdatePassword(ctx context.Context, requestID uuid.UUID, password string) error
}

// Compile-time check
var _ AdminInterface = (*AdminStore)(nil)

type AdminStore struct {
	db     *gorm.DB
	logger *zerolog.Logger
}

func NewAdminStore(logger *zerolog.Logger, db *gorm.DB) AdminInterface {
	return &AdminStore{
		logger: logger,
		db:     db,
	}
}

func (a *AdminStore) Get(ctx context.Context, requestID uuid.UUID) (*Admin, error) {
	log := a.logger.With().
		Str(MethodStrHelper, "admin.Get").
		Str(RequestID, requestID.String()).
		Logger()

	log.Info().Msg("Got a request to get the admin credential")

	var admin Admin

	if err := a.db.WithContext(ctx).Where("id = ?", AdminID).Take(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Err(err).Msg("Failed to get admin")
		return nil, err
	}

	return &admin, nil
}

// Create inserts the admin row. Two first logins racing each other both end
// up here; the loser's insert is dropped.
func (a *AdminStore) Create(ctx context.Context, requestID uuid.UUID, password string) error {
	log := a.logger.With().
		Str(MethodStrHelper, "admin.Create").
		Str(RequestID, requestID.String()).
		Logger()

	log.Info().Msg("Got a request to create the admin credential")

	if err := a.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Admin{ID: AdminID, Password: password}).Error; err != nil {
		log.Err(err).Msg("Failed to create admin")
		return err
	}

	return nil
}

func (a *AdminStore) UpdatePassword(ctx context.Context, requestID uuid.UUID, password string) error {
	log := a.logger.With().
		Str(MethodStrHelper, "admin.UpdatePassword").
		Str(RequestID, requestID.String()).
		Logger()

	log.Info().Msg("Got a request to update the admin password")

	if err := a.db.WithContext(ctx).
		Model(&Admin{}).
		Where("id = ?", AdminID).
		Update("password", password).Error; err != nil {
		log.Err(err).Msg("Failed to update admin password")
		return err
	}

	return nil
}

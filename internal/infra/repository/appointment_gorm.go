package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/uprisingink/studio-api/internal/domain/appointment"
	"github.com/uprisingink/studio-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Role records
// --------------------------------------------------

func (r *AppointmentGormRepository) GetArtistByID(
	ctx context.Context,
	id string,
) (*models.Artist, error) {

	var artist models.Artist
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		Where("id = ?", id).
		First(&artist).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *AppointmentGormRepository) GetArtistByProfileID(
	ctx context.Context,
	profileID string,
) (*models.Artist, error) {

	var artist models.Artist
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		Where("profile_id = ?", profileID).
		First(&artist).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *AppointmentGormRepository) GetOrCreateClientByProfileID(
	ctx context.Context,
	profileID string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	// First portal visit: provision an empty client record.
	client = models.Client{ProfileID: profileID}
	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Client.Profile").
		Preload("Artist").
		Preload("Artist.Profile").
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) ListForClient(
	ctx context.Context,
	clientID string,
	filter domain.ListFilter,
) ([]models.Appointment, error) {
	return r.list(ctx, "client_id = ?", clientID, filter)
}

func (r *AppointmentGormRepository) ListForArtist(
	ctx context.Context,
	artistID string,
	filter domain.ListFilter,
) ([]models.Appointment, error) {
	return r.list(ctx, "artist_id = ?", artistID, filter)
}

func (r *AppointmentGormRepository) list(
	ctx context.Context,
	cond string,
	id string,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Client.Profile").
		Preload("Artist").
		Preload("Artist.Profile").
		Where(cond, id)

	if filter.From != nil {
		q = q.Where("appointment_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("appointment_date < ?", *filter.To)
	}

	order := "appointment_date ASC"
	if filter.Order == domain.OrderDateDesc {
		order = "appointment_date DESC"
	}

	var aps []models.Appointment
	if err := q.Order(order).Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Appointment{}).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)

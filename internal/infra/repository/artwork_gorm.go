package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/uprisingink/studio-api/internal/domain/artwork"
	"github.com/uprisingink/studio-api/internal/models"
)

type ArtworkGormRepository struct {
	db *gorm.DB
}

func NewArtworkGormRepository(db *gorm.DB) *ArtworkGormRepository {
	return &ArtworkGormRepository{db: db}
}

func (r *ArtworkGormRepository) GetArtistByProfileID(
	ctx context.Context,
	profileID string,
) (*models.Artist, error) {

	var artist models.Artist
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&artist).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *ArtworkGormRepository) CreateArtwork(
	ctx context.Context,
	aw *models.Artwork,
) error {
	return r.db.WithContext(ctx).Create(aw).Error
}

func (r *ArtworkGormRepository) GetArtworkByID(
	ctx context.Context,
	id string,
) (*models.Artwork, error) {

	var aw models.Artwork
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&aw).Error; err != nil {
		return nil, err
	}
	return &aw, nil
}

func (r *ArtworkGormRepository) UpdateArtwork(
	ctx context.Context,
	aw *models.Artwork,
) error {
	return r.db.WithContext(ctx).Save(aw).Error
}

func (r *ArtworkGormRepository) DeleteArtwork(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Artwork{}).Error
}

func (r *ArtworkGormRepository) ListForArtist(
	ctx context.Context,
	artistID string,
	filter domain.ListFilter,
) ([]models.Artwork, error) {

	q := r.db.WithContext(ctx).Where("artist_id = ?", artistID)

	if filter.PublicOnly {
		q = q.Where("is_public = ?", true)
	}
	if filter.PortfolioOnly {
		q = q.Where("is_portfolio_piece = ?", true)
	}

	// style_tags is a JSON array column; a LIKE over its text form is enough
	// for tag filtering at studio scale.
	if tag := strings.TrimSpace(filter.StyleTag); tag != "" {
		q = q.Where("style_tags::text ILIKE ?", "%"+tag+"%")
	}

	if query := strings.ToLower(strings.TrimSpace(filter.Query)); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var works []models.Artwork
	if err := q.Order("created_at DESC").Find(&works).Error; err != nil {
		return nil, err
	}

	return works, nil
}

// Compile-time check
var _ domain.Repository = (*ArtworkGormRepository)(nil)

package repositories

import (
	"github.com/ideacreators/backend/internal/models"
	"gorm.io/gorm"
)

// IdeaRepository defines the interface for idea data operations.
// Lookups that mutate are scoped to the owning user so that another
// user's idea id behaves exactly like a missing one.
type IdeaRepository interface {
	CreateIdea(idea *models.Idea) error
	GetOwnedIdea(ownerID, ideaID uint) (*models.Idea, error)
	GetIdeasByOwner(ownerID uint) ([]models.Idea, error)
	GetVisibleIdeasByOwner(ownerID uint, includeProtected bool) ([]models.Idea, error)
	GetFeed(viewerID uint, followingIDs []uint) ([]models.Idea, error)
	UpdateIdea(idea *models.Idea) error
	DeleteIdea(ownerID, ideaID uint) error
}

// PostgresIdeaRepository implements IdeaRepository for PostgreSQL
type PostgresIdeaRepository struct {
	db *gorm.DB
}

// NewPostgresIdeaRepository creates a new PostgresIdeaRepository
func NewPostgresIdeaRepository(db *gorm.DB) *PostgresIdeaRepository {
	return &PostgresIdeaRepository{db: db}
}

// CreateIdea creates a new idea
func (r *PostgresIdeaRepository) CreateIdea(idea *models.Idea) error {
	return r.db.Create(idea).Error
}

// GetOwnedIdea retrieves an idea by id only within the owner's own ideas
func (r *PostgresIdeaRepository) GetOwnedIdea(ownerID, ideaID uint) (*models.Idea, error) {
	var idea models.Idea
	if err := r.db.Where("user_id = ?", ownerID).First(&idea, ideaID).Error; err != nil {
		return nil, err
	}
	return &idea, nil
}

// GetIdeasByOwner retrieves all of a user's ideas regardless of visibility,
// newest first
func (r *PostgresIdeaRepository) GetIdeasByOwner(ownerID uint) ([]models.Idea, error) {
	var ideas []models.Idea
	err := r.db.Where("user_id = ?", ownerID).Order("created_at DESC").Find(&ideas).Error
	return ideas, err
}

// GetVisibleIdeasByOwner retrieves a user's ideas as seen by another user:
// public only, or public+protected when includeProtected is set. Private
// ideas are never returned here.
func (r *PostgresIdeaRepository) GetVisibleIdeasByOwner(ownerID uint, includeProtected bool) ([]models.Idea, error) {
	var ideas []models.Idea
	q := r.db.Where("user_id = ?", ownerID)
	if includeProtected {
		q = q.Where("visibility <> ?", models.VisibilityPrivate)
	} else {
		q = q.Where("visibility = ?", models.VisibilityPublic)
	}
	err := q.Order("created_at DESC").Find(&ideas).Error
	return ideas, err
}

// GetFeed retrieves the union of the viewer's own ideas, non-private ideas
// of followed users, and all public ideas, newest first. The union is a
// single query so a row matching several branches appears once.
func (r *PostgresIdeaRepository) GetFeed(viewerID uint, followingIDs []uint) ([]models.Idea, error) {
	var ideas []models.Idea
	q := r.db.Where("user_id = ?", viewerID).
		Or("visibility = ?", models.VisibilityPublic)
	if len(followingIDs) > 0 {
		q = q.Or("user_id IN ? AND visibility <> ?", followingIDs, models.VisibilityPrivate)
	}
	err := r.db.Where(q).Order("created_at DESC").Find(&ideas).Error
	return ideas, err
}

// UpdateIdea persists changes to an existing idea
func (r *PostgresIdeaRepository) UpdateIdea(idea *models.Idea) error {
	return r.db.Save(idea).Error
}

// DeleteIdea deletes an idea, scoped to its owner
func (r *PostgresIdeaRepository) DeleteIdea(ownerID, ideaID uint) error {
	res := r.db.Where("user_id = ?", ownerID).Delete(&models.Idea{}, ideaID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repositories

import (
	"github.com/ideacreators/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRequestRepository defines the interface for follow request operations
type FollowRequestRepository interface {
	CreateRequest(req *models.FollowRequest) error
	GetReceivedRequest(targetID, requestID uint) (*models.FollowRequest, error)
	GetReceivedRequests(targetID uint) ([]models.FollowRequest, error)
	HasPendingRequest(requesterID, targetID uint) (bool, error)
	Accept(requestID uint) error
	Deny(requestID uint) error
}

// PostgresFollowRequestRepository implements FollowRequestRepository for PostgreSQL
type PostgresFollowRequestRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRequestRepository creates a new PostgresFollowRequestRepository
func NewPostgresFollowRequestRepository(db *gorm.DB) *PostgresFollowRequestRepository {
	return &PostgresFollowRequestRepository{db: db}
}

// CreateRequest creates a new pending follow request
func (r *PostgresFollowRequestRepository) CreateRequest(req *models.FollowRequest) error {
	req.Status = models.RequestPending
	return r.db.Create(req).Error
}

// GetReceivedRequest retrieves a request by id only within the requests
// addressed to targetID. A request addressed to someone else is a
// record-not-found, not a forbidden error.
func (r *PostgresFollowRequestRepository) GetReceivedRequest(targetID, requestID uint) (*models.FollowRequest, error) {
	var req models.FollowRequest
	if err := r.db.Where("to_follow_id = ?", targetID).First(&req, requestID).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// GetReceivedRequests retrieves all requests addressed to a user, pending
// and resolved, newest first
func (r *PostgresFollowRequestRepository) GetReceivedRequests(targetID uint) ([]models.FollowRequest, error) {
	var requests []models.FollowRequest
	err := r.db.Where("to_follow_id = ?", targetID).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// HasPendingRequest reports whether a pending request already exists from
// requesterID to targetID
func (r *PostgresFollowRequestRepository) HasPendingRequest(requesterID, targetID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.FollowRequest{}).
		Where("requester_id = ? AND to_follow_id = ? AND status = ?", requesterID, targetID, models.RequestPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Accept marks the request accepted and inserts the follow edge
// requester->target in one transaction. The status update is guarded on
// the request still being pending, so concurrent responses to the same
// request cannot both win and a crash cannot leave an accepted request
// without its edge.
func (r *PostgresFollowRequestRepository) Accept(requestID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var req models.FollowRequest
		if err := tx.First(&req, requestID).Error; err != nil {
			return err
		}
		res := tx.Model(&models.FollowRequest{}).
			Where("id = ? AND status = ?", requestID, models.RequestPending).
			Update("status", models.RequestAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		follow := &models.Follow{FollowerID: req.RequesterID, FollowingID: req.ToFollowID}
		return tx.Create(follow).Error
	})
}

// Deny marks the request denied; no follow edge is touched
func (r *PostgresFollowRequestRepository) Deny(requestID uint) error {
	res := r.db.Model(&models.FollowRequest{}).
		Where("id = ? AND status = ?", requestID, models.RequestPending).
		Update("status", models.RequestDenied)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

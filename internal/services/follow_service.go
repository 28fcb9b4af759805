package services

import (
	"github.com/ideacreators/backend/internal/apperrors"
	"github.com/ideacreators/backend/internal/models"
	"github.com/ideacreators/backend/internal/repositories"
	"go.uber.org/zap"
)

// FollowService implements the follow-request state machine and the direct
// edge removals. Requests move pending -> accepted or pending -> denied,
// resolved only by their target, and never leave a terminal state.
type FollowService struct {
	requestRepo      repositories.FollowRequestRepository
	followRepo       repositories.FollowRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	logger           *zap.Logger
}

// NewFollowService creates a new FollowService
func NewFollowService(
	requestRepo repositories.FollowRequestRepository,
	followRepo repositories.FollowRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	logger *zap.Logger,
) *FollowService {
	return &FollowService{
		requestRepo:      requestRepo,
		followRepo:       followRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Send creates a pending follow request from the viewer to the target.
func (s *FollowService) Send(viewerID, targetID uint) (*models.FollowRequest, error) {
	if viewerID == 0 {
		return nil, errUnauthenticated
	}
	target, err := s.userRepo.GetUserByID(targetID)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}
	if target.ID == viewerID {
		return nil, apperrors.NewValidation("cannot send a follow request to yourself")
	}
	following, err := s.followRepo.IsFollowing(viewerID, target.ID)
	if err != nil {
		return nil, internal(err)
	}
	if following {
		return nil, apperrors.New(apperrors.Conflict, "already following this user")
	}
	pending, err := s.requestRepo.HasPendingRequest(viewerID, target.ID)
	if err != nil {
		return nil, internal(err)
	}
	if pending {
		return nil, apperrors.New(apperrors.Conflict, "a pending follow request already exists")
	}
	req := &models.FollowRequest{RequesterID: viewerID, ToFollowID: target.ID}
	if err := s.requestRepo.CreateRequest(req); err != nil {
		return nil, internal(err)
	}
	s.notify(target.ID, viewerID, "follow_request", "sent you a follow request")
	s.logger.Info("follow request sent",
		zap.Uint("requester_id", viewerID), zap.Uint("to_follow_id", target.ID))
	return req, nil
}

// Respond resolves a pending request addressed to the viewer. Approving
// marks it accepted and adds the edge requester->viewer in one
// transaction; denying only marks it denied.
func (s *FollowService) Respond(viewerID, requestID uint, approve bool) (*models.FollowRequest, error) {
	if viewerID == 0 {
		return nil, errUnauthenticated
	}
	req, err := s.requestRepo.GetReceivedRequest(viewerID, requestID)
	if err != nil {
		return nil, notFoundOr(err, "follow request not found")
	}
	if req.Status != models.RequestPending {
		return nil, apperrors.New(apperrors.Conflict, "follow request already resolved")
	}
	if approve {
		if err := s.requestRepo.Accept(req.ID); err != nil {
			// A concurrent response won the pending-status race.
			return nil, notFoundOr(err, "follow request not found")
		}
		req.Status = models.RequestAccepted
		s.notify(req.RequesterID, viewerID, "follow_accepted", "accepted your follow request")
	} else {
		if err := s.requestRepo.Deny(req.ID); err != nil {
			return nil, notFoundOr(err, "follow request not found")
		}
		req.Status = models.RequestDenied
	}
	s.logger.Info("follow request resolved",
		zap.Uint("request_id", req.ID), zap.String("status", req.Status))
	return req, nil
}

// Unfollow removes the viewer's edge to the target. Removing an edge that
// does not exist succeeds the same way.
func (s *FollowService) Unfollow(viewerID, targetID uint) (*models.User, error) {
	if viewerID == 0 {
		return nil, errUnauthenticated
	}
	target, err := s.userRepo.GetUserByID(targetID)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}
	if err := s.followRepo.DeleteFollow(viewerID, target.ID); err != nil {
		return nil, internal(err)
	}
	return target, nil
}

// RemoveFollower removes the follower's edge to the viewer.
func (s *FollowService) RemoveFollower(viewerID, followerID uint) (*models.User, error) {
	if viewerID == 0 {
		return nil, errUnauthenticated
	}
	follower, err := s.userRepo.GetUserByID(followerID)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}
	if err := s.followRepo.DeleteFollow(follower.ID, viewerID); err != nil {
		return nil, internal(err)
	}
	return follower, nil
}

// Followers returns the users who follow the viewer.
func (s *FollowService) Followers(viewerID uint) ([]models.User, error) {
	if viewerID == 0 {
		return nil, errUnauthenticated
	}
	users, err := s.followRepo.GetFollowers(viewerID)
	if err != nil {
		return nil, internal(err)
	}
	return users, nil
}

// Following returns the users the viewer follows.
func (s *FollowService) Following(viewerID uint) ([]models.User, error) {
	if viewerID == 0 {
		return nil, errUnauthenticated
	}
	users, err := s.followRepo.GetFollowing(viewerID)
	if err != nil {
		return nil, internal(err)
	}
	return users, nil
}

// ReceivedRequests returns every request addressed to the viewer, pending
// and resolved.
func (s *FollowService) ReceivedRequests(viewerID uint) ([]models.FollowRequest, error) {
	if viewerID == 0 {
		return nil, errUnauthenticated
	}
	requests, err := s.requestRepo.GetReceivedRequests(viewerID)
	if err != nil {
		return nil, internal(err)
	}
	return requests, nil
}

// notify records a notification for recipientID. Failures are logged and
// do not fail the triggering operation.
func (s *FollowService) notify(recipientID, actorID uint, kind, suffix string) {
	if s.notificationRepo == nil {
		return
	}
	actor, err := s.userRepo.GetUserByID(actorID)
	if err != nil {
		return
	}
	notif := &models.Notification{
		Type:        kind,
		ActorID:     actorID,
		RecipientID: recipientID,
		Message:     actor.Username + " " + suffix,
	}
	if err := s.notificationRepo.CreateNotification(notif); err != nil {
		s.logger.Warn("failed to create notification", zap.Error(err))
	}
}

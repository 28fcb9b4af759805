package services

import (
	"github.com/ideacreators/backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUsers() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) SearchUsers(query string, excludeID uint) ([]models.User, error) {
	args := m.Called(query, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// MockIdeaRepository is a mock implementation of repositories.IdeaRepository
type MockIdeaRepository struct {
	mock.Mock
}

func (m *MockIdeaRepository) CreateIdea(idea *models.Idea) error {
	args := m.Called(idea)
	return args.Error(0)
}

func (m *MockIdeaRepository) GetOwnedIdea(ownerID, ideaID uint) (*models.Idea, error) {
	args := m.Called(ownerID, ideaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Idea), args.Error(1)
}

func (m *MockIdeaRepository) GetIdeasByOwner(ownerID uint) ([]models.Idea, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Idea), args.Error(1)
}

func (m *MockIdeaRepository) GetVisibleIdeasByOwner(ownerID uint, includeProtected bool) ([]models.Idea, error) {
	args := m.Called(ownerID, includeProtected)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Idea), args.Error(1)
}

func (m *MockIdeaRepository) GetFeed(viewerID uint, followingIDs []uint) ([]models.Idea, error) {
	args := m.Called(viewerID, followingIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Idea), args.Error(1)
}

func (m *MockIdeaRepository) UpdateIdea(idea *models.Idea) error {
	args := m.Called(idea)
	return args.Error(0)
}

func (m *MockIdeaRepository) DeleteIdea(ownerID, ideaID uint) error {
	args := m.Called(ownerID, ideaID)
	return args.Error(0)
}

// MockFollowRepository is a mock implementation of repositories.FollowRepository
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) DeleteFollow(followerID, followingID uint) error {
	args := m.Called(followerID, followingID)
	return args.Error(0)
}

func (m *MockFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	args := m.Called(followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) GetFollowers(userID uint) ([]models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockFollowRepository) GetFollowing(userID uint) ([]models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockFollowRepository) GetFollowingIDs(userID uint) ([]uint, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

// MockFollowRequestRepository is a mock implementation of repositories.FollowRequestRepository
type MockFollowRequestRepository struct {
	mock.Mock
}

func (m *MockFollowRequestRepository) CreateRequest(req *models.FollowRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *MockFollowRequestRepository) GetReceivedRequest(targetID, requestID uint) (*models.FollowRequest, error) {
	args := m.Called(targetID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FollowRequest), args.Error(1)
}

func (m *MockFollowRequestRepository) GetReceivedRequests(targetID uint) ([]models.FollowRequest, error) {
	args := m.Called(targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FollowRequest), args.Error(1)
}

func (m *MockFollowRequestRepository) HasPendingRequest(requesterID, targetID uint) (bool, error) {
	args := m.Called(requesterID, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRequestRepository) Accept(requestID uint) error {
	args := m.Called(requestID)
	return args.Error(0)
}

func (m *MockFollowRequestRepository) Deny(requestID uint) error {
	args := m.Called(requestID)
	return args.Error(0)
}

// MockNotificationRepository is a mock implementation of repositories.NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateNotification(notification *models.Notification) error {
	args := m.Called(notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetByRecipientID(recipientID uint) ([]models.Notification, error) {
	args := m.Called(recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetUnreadCount(recipientID uint) (int64, error) {
	args := m.Called(recipientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkAsRead(recipientID, notificationID uint) error {
	args := m.Called(recipientID, notificationID)
	return args.Error(0)
}

// MockMailer is a mock implementation of Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendPasswordReset(email, username, token string) error {
	args := m.Called(email, username, token)
	return args.Error(0)
}

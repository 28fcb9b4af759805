package services

import (
	"testing"

	"github.com/ideacreators/backend/internal/apperrors"
	"github.com/ideacreators/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newIdeaService() (*IdeaService, *MockIdeaRepository, *MockFollowRepository, *MockUserRepository) {
	ideaRepo := new(MockIdeaRepository)
	followRepo := new(MockFollowRepository)
	userRepo := new(MockUserRepository)
	return NewIdeaService(ideaRepo, followRepo, userRepo, zap.NewNop()), ideaRepo, followRepo, userRepo
}

func TestListAllRequiresViewer(t *testing.T) {
	svc, _, _, _ := newIdeaService()

	_, err := svc.ListAll(0)
	assert.Error(t, err)
	assert.Equal(t, apperrors.Unauthenticated, apperrors.CodeOf(err))
}

func TestListAllFeedsFromFollowedUsers(t *testing.T) {
	svc, ideaRepo, followRepo, _ := newIdeaService()

	feed := []models.Idea{
		{ID: 3, UserID: 2, Visibility: models.VisibilityProtected},
		{ID: 2, UserID: 1, Visibility: models.VisibilityPrivate},
		{ID: 1, UserID: 9, Visibility: models.VisibilityPublic},
	}
	followRepo.On("GetFollowingIDs", uint(1)).Return([]uint{2}, nil)
	ideaRepo.On("GetFeed", uint(1), []uint{2}).Return(feed, nil)

	ideas, err := svc.ListAll(1)
	assert.NoError(t, err)
	assert.Equal(t, feed, ideas)
	ideaRepo.AssertExpectations(t)
	followRepo.AssertExpectations(t)
}

func TestListMineReturnsAllVisibilities(t *testing.T) {
	svc, ideaRepo, _, _ := newIdeaService()

	mine := []models.Idea{
		{ID: 2, UserID: 1, Visibility: models.VisibilityPrivate},
		{ID: 1, UserID: 1, Visibility: models.VisibilityPublic},
	}
	ideaRepo.On("GetIdeasByOwner", uint(1)).Return(mine, nil)

	ideas, err := svc.ListMine(1)
	assert.NoError(t, err)
	assert.Equal(t, mine, ideas)
}

func TestListOfNonFollowerSeesPublicOnly(t *testing.T) {
	svc, ideaRepo, followRepo, userRepo := newIdeaService()

	userRepo.On("GetUserByID", uint(2)).Return(&models.User{ID: 2, Username: "alice"}, nil)
	followRepo.On("IsFollowing", uint(3), uint(2)).Return(false, nil)
	public := []models.Idea{{ID: 1, UserID: 2, Content: "p1", Visibility: models.VisibilityPublic}}
	ideaRepo.On("GetVisibleIdeasByOwner", uint(2), false).Return(public, nil)

	ideas, err := svc.ListOf(3, 2)
	assert.NoError(t, err)
	assert.Equal(t, public, ideas)
}

func TestListOfFollowerSeesProtected(t *testing.T) {
	svc, ideaRepo, followRepo, userRepo := newIdeaService()

	userRepo.On("GetUserByID", uint(2)).Return(&models.User{ID: 2, Username: "alice"}, nil)
	followRepo.On("IsFollowing", uint(4), uint(2)).Return(true, nil)
	visible := []models.Idea{
		{ID: 5, UserID: 2, Content: "p2", Visibility: models.VisibilityProtected},
		{ID: 1, UserID: 2, Content: "p1", Visibility: models.VisibilityPublic},
	}
	ideaRepo.On("GetVisibleIdeasByOwner", uint(2), true).Return(visible, nil)

	ideas, err := svc.ListOf(4, 2)
	assert.NoError(t, err)
	assert.Equal(t, visible, ideas)
}

func TestListOfSelfBehavesLikeListMine(t *testing.T) {
	svc, ideaRepo, _, userRepo := newIdeaService()

	userRepo.On("GetUserByID", uint(1)).Return(&models.User{ID: 1}, nil)
	mine := []models.Idea{{ID: 9, UserID: 1, Visibility: models.VisibilityPrivate}}
	ideaRepo.On("GetIdeasByOwner", uint(1)).Return(mine, nil)

	ideas, err := svc.ListOf(1, 1)
	assert.NoError(t, err)
	assert.Equal(t, mine, ideas)
	ideaRepo.AssertNotCalled(t, "GetVisibleIdeasByOwner", mock.Anything, mock.Anything)
}

func TestListOfUnknownUser(t *testing.T) {
	svc, _, _, userRepo := newIdeaService()

	userRepo.On("GetUserByID", uint(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ListOf(1, 42)
	assert.Error(t, err)
	assert.Equal(t, apperrors.NotFound, apperrors.CodeOf(err))
}

func TestAddIdeaEmptyContent(t *testing.T) {
	svc, ideaRepo, _, _ := newIdeaService()

	_, err := svc.Add(1, "", "")
	assert.Error(t, err)
	assert.Equal(t, apperrors.Validation, apperrors.CodeOf(err))
	ideaRepo.AssertNotCalled(t, "CreateIdea", mock.Anything)
}

func TestAddIdeaInvalidVisibility(t *testing.T) {
	svc, ideaRepo, _, _ := newIdeaService()

	_, err := svc.Add(1, "hello", "friends-only")
	assert.Error(t, err)
	assert.Equal(t, apperrors.Validation, apperrors.CodeOf(err))
	ideaRepo.AssertNotCalled(t, "CreateIdea", mock.Anything)
}

func TestAddIdeaDefaultsToPublic(t *testing.T) {
	svc, ideaRepo, _, _ := newIdeaService()

	ideaRepo.On("CreateIdea", mock.AnythingOfType("*models.Idea")).Return(nil)

	idea, err := svc.Add(1, "hello world", "")
	assert.NoError(t, err)
	assert.Equal(t, models.VisibilityPublic, idea.Visibility)
	assert.Equal(t, uint(1), idea.UserID)
}

func TestAddIdeaVisibilityCaseInsensitive(t *testing.T) {
	svc, ideaRepo, _, _ := newIdeaService()

	ideaRepo.On("CreateIdea", mock.AnythingOfType("*models.Idea")).Return(nil)

	idea, err := svc.Add(1, "quiet thought", "PRIVATE")
	assert.NoError(t, err)
	assert.Equal(t, models.VisibilityPrivate, idea.Visibility)
}

func TestAddIdeaTooLong(t *testing.T) {
	svc, _, _, _ := newIdeaService()

	long := make([]rune, 281)
	for i := range long {
		long[i] = 'a'
	}
	_, err := svc.Add(1, string(long), "")
	assert.Error(t, err)
	assert.Equal(t, apperrors.Validation, apperrors.CodeOf(err))
}

func TestEditIdeaNotOwnedIsNotFound(t *testing.T) {
	svc, ideaRepo, _, _ := newIdeaService()

	// Idea 7 belongs to someone else; the owner-scoped lookup misses.
	ideaRepo.On("GetOwnedIdea", uint(1), uint(7)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Edit(1, 7, "hijacked", "")
	assert.Error(t, err)
	assert.Equal(t, apperrors.NotFound, apperrors.CodeOf(err))
	ideaRepo.AssertNotCalled(t, "UpdateIdea", mock.Anything)
}

func TestEditIdeaPartialUpdate(t *testing.T) {
	svc, ideaRepo, _, _ := newIdeaService()

	existing := &models.Idea{ID: 7, UserID: 1, Content: "old", Visibility: models.VisibilityProtected}
	ideaRepo.On("GetOwnedIdea", uint(1), uint(7)).Return(existing, nil)
	ideaRepo.On("UpdateIdea", existing).Return(nil)

	idea, err := svc.Edit(1, 7, "new content", "")
	assert.NoError(t, err)
	assert.Equal(t, "new content", idea.Content)
	assert.Equal(t, models.VisibilityProtected, idea.Visibility)
}

func TestDeleteIdeaNotOwnedIsNotFound(t *testing.T) {
	svc, ideaRepo, _, _ := newIdeaService()

	ideaRepo.On("DeleteIdea", uint(1), uint(7)).Return(gorm.ErrRecordNotFound)

	err := svc.Delete(1, 7)
	assert.Error(t, err)
	assert.Equal(t, apperrors.NotFound, apperrors.CodeOf(err))
}

func TestDeleteIdea(t *testing.T) {
	svc, ideaRepo, _, _ := newIdeaService()

	ideaRepo.On("DeleteIdea", uint(1), uint(3)).Return(nil)

	err := svc.Delete(1, 3)
	assert.NoError(t, err)
	ideaRepo.AssertExpectations(t)
}

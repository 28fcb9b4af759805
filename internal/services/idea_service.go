package services

import (
	"github.com/ideacreators/backend/internal/apperrors"
	"github.com/ideacreators/backend/internal/models"
	"github.com/ideacreators/backend/internal/repositories"
	"go.uber.org/zap"
)

const maxIdeaLength = 280

// IdeaService implements the visibility-scoped read model and the
// owner-checked idea commands. Every operation takes the viewer's user ID
// explicitly; zero means anonymous.
type IdeaService struct {
	ideaRepo   repositories.IdeaRepository
	followRepo repositories.FollowRepository
	userRepo   repositories.UserRepository
	logger     *zap.Logger
}

// NewIdeaService creates a new IdeaService
func NewIdeaService(ideaRepo repositories.IdeaRepository, followRepo repositories.FollowRepository, userRepo repositories.UserRepository, logger *zap.Logger) *IdeaService {
	return &IdeaService{
		ideaRepo:   ideaRepo,
		followRepo: followRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// ListAll returns the viewer's feed: their own ideas, non-private ideas of
// users they follow, and every public idea, newest first.
func (s *IdeaService) ListAll(viewerID uint) ([]models.Idea, error) {
	if viewerID == 0 {
		return nil, errUnauthenticated
	}
	followingIDs, err := s.followRepo.GetFollowingIDs(viewerID)
	if err != nil {
		return nil, internal(err)
	}
	ideas, err := s.ideaRepo.GetFeed(viewerID, followingIDs)
	if err != nil {
		return nil, internal(err)
	}
	return ideas, nil
}

// ListMine returns all of the viewer's own ideas regardless of visibility.
func (s *IdeaService) ListMine(viewerID uint) ([]models.Idea, error) {
	if viewerID == 0 {
		return nil, errUnauthenticated
	}
	ideas, err := s.ideaRepo.GetIdeasByOwner(viewerID)
	if err != nil {
		return nil, internal(err)
	}
	return ideas, nil
}

// ListOf returns the target user's ideas as visible to the viewer:
// everything for the owner, public and protected for a follower, public
// only for anyone else.
func (s *IdeaService) ListOf(viewerID, targetID uint) ([]models.Idea, error) {
	if viewerID == 0 {
		return nil, errUnauthenticated
	}
	target, err := s.userRepo.GetUserByID(targetID)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}
	if target.ID == viewerID {
		return s.ListMine(viewerID)
	}
	follows, err := s.followRepo.IsFollowing(viewerID, target.ID)
	if err != nil {
		return nil, internal(err)
	}
	ideas, err := s.ideaRepo.GetVisibleIdeasByOwner(target.ID, follows)
	if err != nil {
		return nil, internal(err)
	}
	return ideas, nil
}

// Add posts a new idea. Visibility is optional, matched case-insensitively,
// and defaults to public.
func (s *IdeaService) Add(viewerID uint, content, visibility string) (*models.Idea, error) {
	if viewerID == 0 {
		return nil, errUnauthenticated
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}
	vis, ok := models.ParseVisibility(visibility)
	if !ok {
		return nil, apperrors.NewValidation("visibility must be public, protected or private")
	}
	idea := &models.Idea{
		Content:    content,
		UserID:     viewerID,
		Visibility: vis,
	}
	if err := s.ideaRepo.CreateIdea(idea); err != nil {
		return nil, internal(err)
	}
	s.logger.Info("idea created", zap.Uint("user_id", viewerID), zap.Uint("idea_id", idea.ID))
	return idea, nil
}

// Edit updates an idea's content and/or visibility. The lookup is scoped
// to the viewer's own ideas, so an id owned by someone else reads as
// not-found.
func (s *IdeaService) Edit(viewerID, ideaID uint, content, visibility string) (*models.Idea, error) {
	if viewerID == 0 {
		return nil, errUnauthenticated
	}
	idea, err := s.ideaRepo.GetOwnedIdea(viewerID, ideaID)
	if err != nil {
		return nil, notFoundOr(err, "idea not found")
	}
	if content != "" {
		if err := validateContent(content); err != nil {
			return nil, err
		}
		idea.Content = content
	}
	if visibility != "" {
		vis, ok := models.ParseVisibility(visibility)
		if !ok {
			return nil, apperrors.NewValidation("visibility must be public, protected or private")
		}
		idea.Visibility = vis
	}
	if err := s.ideaRepo.UpdateIdea(idea); err != nil {
		return nil, internal(err)
	}
	return idea, nil
}

// Delete removes one of the viewer's own ideas.
func (s *IdeaService) Delete(viewerID, ideaID uint) error {
	if viewerID == 0 {
		return errUnauthenticated
	}
	if err := s.ideaRepo.DeleteIdea(viewerID, ideaID); err != nil {
		return notFoundOr(err, "idea not found")
	}
	s.logger.Info("idea deleted", zap.Uint("user_id", viewerID), zap.Uint("idea_id", ideaID))
	return nil
}

func validateContent(content string) error {
	if content == "" {
		return apperrors.NewValidation("content must not be empty")
	}
	if len([]rune(content)) > maxIdeaLength {
		return apperrors.NewValidation("content must be at most 280 characters")
	}
	return nil
}

package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/ideacreators/backend/internal/apperrors"
	"github.com/ideacreators/backend/internal/models"
	"github.com/ideacreators/backend/internal/repositories"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenAudience = "password_reset"

// Mailer sends password-reset emails.
type Mailer interface {
	SendPasswordReset(email, username, token string) error
}

// UserService handles registration, authentication and profile queries.
type UserService struct {
	userRepo  repositories.UserRepository
	mailer    Mailer
	jwtSecret string
	logger    *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, mailer Mailer, jwtSecret string, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo:  userRepo,
		mailer:    mailer,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Register creates a new user and returns it with a signed session token.
func (s *UserService) Register(username, email, password string) (*models.User, string, error) {
	if _, err := s.userRepo.GetUserByUsername(username); err == nil {
		return nil, "", apperrors.New(apperrors.Conflict, "username already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", internal(err)
	}
	if _, err := s.userRepo.GetUserByEmail(email); err == nil {
		return nil, "", apperrors.New(apperrors.Conflict, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", internal(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.Internal, "failed to hash password", err)
	}
	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, "", internal(err)
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.Internal, "failed to generate token", err)
	}
	s.logger.Info("user registered", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	return user, token, nil
}

// Authenticate verifies credentials and returns the user with a session token.
func (s *UserService) Authenticate(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, "", notFoundOr(err, "invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.New(apperrors.NotFound, "invalid email or password")
	}
	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.Internal, "failed to generate token", err)
	}
	return user, token, nil
}

// ChangePassword replaces the viewer's password.
func (s *UserService) ChangePassword(viewerID uint, password string) error {
	if viewerID == 0 {
		return errUnauthenticated
	}
	user, err := s.userRepo.GetUserByID(viewerID)
	if err != nil {
		return notFoundOr(err, "user not found")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Wrap(apperrors.Internal, "failed to hash password", err)
	}
	user.Password = string(hashed)
	if err := s.userRepo.UpdateUser(user); err != nil {
		return internal(err)
	}
	s.logger.Info("password changed", zap.Uint("user_id", viewerID))
	return nil
}

// Users returns all registered users.
func (s *UserService) Users() ([]models.User, error) {
	users, err := s.userRepo.GetUsers()
	if err != nil {
		return nil, internal(err)
	}
	return users, nil
}

// Me returns the viewer's own profile.
func (s *UserService) Me(viewerID uint) (*models.User, error) {
	if viewerID == 0 {
		return nil, errUnauthenticated
	}
	user, err := s.userRepo.GetUserByID(viewerID)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}
	return user, nil
}

// SearchUsers matches usernames by case-insensitive substring, excluding
// the viewer.
func (s *UserService) SearchUsers(viewerID uint, query string) ([]models.User, error) {
	if viewerID == 0 {
		return nil, errUnauthenticated
	}
	users, err := s.userRepo.SearchUsers(query, viewerID)
	if err != nil {
		return nil, internal(err)
	}
	return users, nil
}

// ForgottenPassword emails a short-lived reset token to the address.
func (s *UserService) ForgottenPassword(email string) error {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return notFoundOr(err, "user not found")
	}
	token, err := s.generateResetToken(user)
	if err != nil {
		return apperrors.Wrap(apperrors.Internal, "failed to generate reset token", err)
	}
	if err := s.mailer.SendPasswordReset(user.Email, user.Username, token); err != nil {
		return apperrors.Wrap(apperrors.Internal, "failed to send reset email", err)
	}
	s.logger.Info("password reset email sent", zap.Uint("user_id", user.ID))
	return nil
}

// ResetPassword completes the reset flow with the emailed token.
func (s *UserService) ResetPassword(token, password string) error {
	userID, err := s.parseResetToken(token)
	if err != nil {
		return apperrors.NewValidation("invalid or expired reset token")
	}
	return s.ChangePassword(userID, password)
}

// GenerateToken signs a session JWT for the user.
func (s *UserService) GenerateToken(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *UserService) generateResetToken(user *models.User) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		Audience:  jwt.ClaimStrings{resetTokenAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *UserService) parseResetToken(tokenString string) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, jwt.ErrTokenInvalidClaims
	}
	if !claims.VerifyAudience(resetTokenAudience, true) {
		return 0, jwt.ErrTokenInvalidAudience
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

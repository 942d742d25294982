package services

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/danielessuu/backend-sd3/repository"
	"github.com/danielessuu/backend-sd3/utils"
)

// AuthService handles the staff login and the token refresh flow.
type AuthService struct {
	userRepo   *repository.UserRepository
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:   repo,
		jwtSecret:  secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Login verifies the staff credentials and issues an access+refresh pair.
func (s *AuthService) Login(username, password string) (*TokenPair, error) {
	username = strings.TrimSpace(username)

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issuePair(user.ID, user.Username)
}

// Refresh validates a refresh token and issues a fresh pair.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := utils.ParseToken(refreshToken, s.jwtSecret)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != utils.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}

	// Make sure the account still exists before re-issuing.
	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return s.issuePair(user.ID, user.Username)
}

func (s *AuthService) issuePair(userID uint, username string) (*TokenPair, error) {
	access, err := utils.GenerateAccessToken(userID, username, s.jwtSecret, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := utils.GenerateRefreshToken(userID, username, s.jwtSecret, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

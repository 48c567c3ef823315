package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"food_ordering/internal/models"
	"food_ordering/internal/redis"
	"food_ordering/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost used when the user table was first populated.
const bcryptCost = 12

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateAddressRequest struct {
	Label   string `json:"label"`
	Details string `json:"details" binding:"required"`
	Phone   string `json:"phone"`
}

type AuthService interface {
	Register(req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req LoginRequest) (string, *models.User, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*redis.SessionData, error)
	GetUser(id uint) (*models.User, error)
	CreateAddress(userID uint, req CreateAddressRequest) (*models.Address, error)
	ListAddresses(userID uint) ([]models.Address, error)
}

type authService struct {
	userRepo   repository.UserRepository
	sessions   *redis.Client
	sessionTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, sessions *redis.Client, sessionTTL time.Duration) AuthService {
	return &authService{
		userRepo:   userRepo,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

func (s *authService) Register(req RegisterRequest) (*models.User, error) {
	_, err := s.userRepo.GetByEmail(req.Email)
	if err == nil {
		return nil, models.ErrEmailTaken
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     models.RoleCustomer,
		IsActive: true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and stores an opaque session token in Redis.
// Downstream handlers only ever see the resolved user id and role.
func (s *authService) Login(ctx context.Context, req LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", nil, models.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, models.ErrInvalidCredentials
	}

	token := uuid.NewString()
	session := &redis.SessionData{
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.SetSession(ctx, token, session, s.sessionTTL); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}

	return token, user, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.DeleteSession(ctx, token)
}

func (s *authService) Authenticate(ctx context.Context, token string) (*redis.SessionData, error) {
	return s.sessions.GetSession(ctx, token)
}

func (s *authService) GetUser(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *authService) CreateAddress(userID uint, req CreateAddressRequest) (*models.Address, error) {
	if req.Details == "" {
		return nil, fmt.Errorf("%w: details", models.ErrMissingFields)
	}

	address := &models.Address{
		UserID:  userID,
		Label:   req.Label,
		Details: req.Details,
		Phone:   req.Phone,
	}
	if err := s.userRepo.CreateAddress(address); err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}
	return address, nil
}

func (s *authService) ListAddresses(userID uint) ([]models.Address, error) {
	return s.userRepo.ListAddresses(userID)
}

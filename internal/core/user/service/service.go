package userapp

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userEntity "ripple/internal/core/user"
	userPort "ripple/internal/ports/user"
)

// UserService handles registration, credential verification and profile
// lookups. It issues the bearer tokens that the auth middleware checks.
type UserService struct {
	UserRepository userPort.UserRepository
	Logger         *zap.Logger
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte, logger *zap.Logger) *UserService {
	return &UserService{
		UserRepository: repo,
		Logger:         logger,
		jwtKey:         jwtKey,
	}
}

// LoginUser verifies the password and issues a signed JWT.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	token, err := s.generateJWT(u, expiresAt)
	if err != nil {
		s.Logger.Error("failed to sign token", zap.String("username", username), zap.Error(err))
		return nil, errors.New("could not generate token")
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

func (s *UserService) generateJWT(u *userEntity.User, expiresAt time.Time) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   u.ID.Hex(),
		Issuer:    "ripple",
		ExpiresAt: expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// RegisterUser creates a new account with a bcrypt password hash.
func (s *UserService) RegisterUser(ctx context.Context, username, name, avatar, password string) (*userPort.UserDTO, error) {
	existing, err := s.UserRepository.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, userPort.ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &userEntity.User{
		Username: username,
		Name:     name,
		Avatar:   avatar,
		Password: string(hashed),
	}

	created, err := s.UserRepository.Create(ctx, u)
	if err != nil {
		return nil, err
	}

	return &userPort.UserDTO{
		ID:       created.ID.Hex(),
		Username: created.Username,
		Name:     created.Name,
		Avatar:   created.Avatar,
	}, nil
}

// FindProfile resolves a user id to its current name/avatar pair. Post
// and comment creation snapshot this into the documents they write.
func (s *UserService) FindProfile(ctx context.Context, id string) (*userPort.Profile, error) {
	u, err := s.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &userPort.Profile{Name: u.Name, Avatar: u.Avatar}, nil
}

package services

import (
	"log"
	"time"

	"daylist-app/daylist/broker"
	"daylist-app/daylist/models"
	"daylist-app/daylist/repositories"
	"daylist-app/daylist/utils/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Use the JWTClaims from token package
type JWTClaims = token.JWTClaims

type AuthServiceInterface interface {
	Register(email, password string) (models.User, error)
	Login(email, password string) (string, error)
	ValidateToken(tokenString string) (*JWTClaims, error)
	HashPassword(password string) (string, error)
	ComparePasswords(hashedPassword, password string) error
}

type AuthService struct {
	users         repositories.UserRepository
	jwtSecret     []byte
	jwtExpiration time.Duration
	producer      *broker.Producer
}

func NewAuthService(users repositories.UserRepository, jwtSecret string, jwtExpirationHours int, producer *broker.Producer) *AuthService {
	return &AuthService{
		users:         users,
		jwtSecret:     []byte(jwtSecret),
		jwtExpiration: time.Duration(jwtExpirationHours) * time.Hour,
		producer:      producer,
	}
}

func (s *AuthService) Register(email, password string) (models.User, error) {
	existing, err := s.users.GetUserByEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if existing != nil {
		return models.User{}, ErrResourceExists
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.users.CreateUser(models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return models.User{}, err
	}

	if s.producer != nil {
		event, err := broker.NewEvent(broker.UserCreated, user.ID.String(), map[string]interface{}{
			"user_id": user.ID.String(),
			"email":   user.Email,
		})
		if err == nil {
			err = s.producer.Publish(broker.UserEventsSubject, event)
		}
		if err != nil {
			log.Printf("Failed to publish %s event: %v", broker.UserCreated, err)
		}
	}

	return user, nil
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := s.ComparePasswords(user.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return token.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtExpiration)
}

// ValidateToken uses the token utility to validate tokens
func (s *AuthService) ValidateToken(tokenString string) (*JWTClaims, error) {
	return token.ValidateToken(tokenString, s.jwtSecret)
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

package services

import (
	"errors"
	"strings"
	"time"

	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"github.com/muhammadnuman-eng/shawarmabackend/repository"
	"github.com/muhammadnuman-eng/shawarmabackend/utils"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	settings  *SettingService
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, settings *SettingService, secret string, ttl time.Duration) *AuthService {
	return &AuthService{userRepo: repo, settings: settings, jwtSecret: secret, jwtTTL: ttl}
}

// Register creates a new customer account. The registration toggle is read
// from persisted settings on every call, never cached in-process.
func (s *AuthService) Register(email, password, firstName, lastName, phone string) (*entity.User, error) {
	enabled, err := s.settings.RegistrationEnabled()
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, ErrRegistrationClosed
	}

	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		PhoneNumber: strings.TrimSpace(phone),
		Role:        "customer",
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

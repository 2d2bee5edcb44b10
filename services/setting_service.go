package services

import (
	"errors"

	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"github.com/muhammadnuman-eng/shawarmabackend/repository"
	"gorm.io/gorm"
)

// SettingService reads and writes persisted configuration. Readers fetch
// per request so toggles hold across restarts and multiple instances.
type SettingService struct {
	Repo *repository.SettingRepository
}

func NewSettingService(repo *repository.SettingRepository) *SettingService {
	return &SettingService{Repo: repo}
}

// RegistrationEnabled defaults to true when the row is missing.
func (s *SettingService) RegistrationEnabled() (bool, error) {
	v, err := s.Repo.Get(entity.SettingRegistrationEnabled)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, nil
		}
		return false, err
	}
	return v == "true", nil
}

func (s *SettingService) SetRegistrationEnabled(enabled bool) error {
	v := "false"
	if enabled {
		v = "true"
	}
	return s.Repo.Set(entity.SettingRegistrationEnabled, v)
}

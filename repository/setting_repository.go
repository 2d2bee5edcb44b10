package repository

import (
	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"gorm.io/gorm"
)

type SettingRepository struct{ DB *gorm.DB }

func NewSettingRepository(db *gorm.DB) *SettingRepository { return &SettingRepository{DB: db} }

func (r *SettingRepository) Get(key string) (string, error) {
	var s entity.AppSetting
	if err := r.DB.Where("key = ?", key).First(&s).Error; err != nil {
		return "", err
	}
	return s.Value, nil
}

func (r *SettingRepository) Set(key, value string) error {
	var s entity.AppSetting
	err := r.DB.Where("key = ?", key).First(&s).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(&entity.AppSetting{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}
	return r.DB.Model(&s).Update("value", value).Error
}

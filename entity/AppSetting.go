package entity

import (
	"gorm.io/gorm"
)

// AppSetting is persisted configuration read per-request, so toggles
// survive restarts and multi-instance deployment.
type AppSetting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value string `gorm:"size:255;not null" json:"value"`
}

const SettingRegistrationEnabled = "registration_enabled"

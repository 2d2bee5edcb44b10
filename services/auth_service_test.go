package services

import (
	"testing"
	"time"

	"github.com/muhammadnuman-eng/shawarmabackend/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthSvc(db *gorm.DB) (*AuthService, *SettingService) {
	settings := NewSettingService(repository.NewSettingRepository(db))
	return NewAuthService(repository.NewUserRepository(db), settings, "test-secret", time.Hour), settings
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthSvc(db)

	user, err := svc.Register("New@Test.Local", "hunter22", "New", "User", "0123456789")
	require.NoError(t, err)
	assert.Equal(t, "new@test.local", user.Email) // normalized
	assert.Equal(t, "customer", user.Role)
	assert.NotEqual(t, "hunter22", user.Password)

	token, logged, err := svc.Login("new@test.local", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthSvc(db)

	_, err := svc.Register("dup@test.local", "pw123456", "A", "B", "")
	require.NoError(t, err)

	_, err = svc.Register("DUP@test.local", "pw123456", "A", "B", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRespectsToggle(t *testing.T) {
	db := newTestDB(t)
	svc, settings := newAuthSvc(db)

	require.NoError(t, settings.SetRegistrationEnabled(false))
	_, err := svc.Register("late@test.local", "pw123456", "A", "B", "")
	assert.ErrorIs(t, err, ErrRegistrationClosed)

	// toggle is read per call, not cached
	require.NoError(t, settings.SetRegistrationEnabled(true))
	_, err = svc.Register("late@test.local", "pw123456", "A", "B", "")
	assert.NoError(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthSvc(db)

	_, err := svc.Register("a@test.local", "correct-pw", "A", "B", "")
	require.NoError(t, err)

	_, _, err = svc.Login("a@test.local", "wrong-pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("ghost@test.local", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

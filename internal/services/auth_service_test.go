// internal/services/auth_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brushwork/artmarket-backend/internal/apperrors"
	"github.com/brushwork/artmarket-backend/internal/models"
	"github.com/brushwork/artmarket-backend/internal/session"
)

func newAuthService(t *testing.T) (*AuthService, *session.Store) {
	t.Helper()
	db := newTestDB(t)
	sessions := session.NewStore(time.Hour)
	return NewAuthService(db, sessions), sessions
}

func TestSignupStoresHashNotPlaintext(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Signup(&SignupRequest{
		UserName: "alice",
		Email:    "alice@example.com",
		Password: "sup3r-Secret",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "sup3r-Secret", user.Password)
	assert.NoError(t, user.CheckPassword("sup3r-Secret"))
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Signup(&SignupRequest{UserName: "alice", Email: "a@example.com", Password: "sup3r-Secret"})
	require.NoError(t, err)

	_, err = svc.Signup(&SignupRequest{UserName: "alice2", Email: "a@example.com", Password: "sup3r-Secret"})
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Signup(&SignupRequest{UserName: "alice", Email: "alice@example.com", Password: "sup3r-Secret"})
	require.NoError(t, err)

	_, _, wrongPass := svc.Login(&LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
	_, _, noUser := svc.Login(&LoginRequest{Email: "nobody@example.com", Password: "wrong-password"})

	var passErr, userErr *apperrors.Error
	require.ErrorAs(t, wrongPass, &passErr)
	require.ErrorAs(t, noUser, &userErr)
	assert.Equal(t, apperrors.KindAuth, passErr.Kind)
	assert.Equal(t, apperrors.KindAuth, userErr.Kind)
	assert.Equal(t, passErr.Message, userErr.Message, "no account enumeration")
}

func TestLoginOpensSessionAndLogoutClosesIt(t *testing.T) {
	svc, sessions := newAuthService(t)

	user, err := svc.Signup(&SignupRequest{UserName: "alice", Email: "alice@example.com", Password: "sup3r-Secret"})
	require.NoError(t, err)

	loggedIn, token, err := svc.Login(&LoginRequest{Email: "alice@example.com", Password: "sup3r-Secret"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	id, ok := sessions.Get(token)
	require.True(t, ok)
	assert.Equal(t, user.ID, id)

	svc.Logout(token)
	_, ok = sessions.Get(token)
	assert.False(t, ok)
}

package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapshare/snapshare-api/internal/apperrors"
	"github.com/snapshare/snapshare-api/internal/core/domain"
	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/internal/core/services"
)

type userFixture struct {
	userRepo  *MockUserRepository
	imageRepo *MockImageRepository
	userCache *MockUserCache
	storage   *MockObjectStorage
	userSvc   portssvc.UserSvcFacade
}

// newUserFixture wires a real user service over a real session service so
// the cache write-through path is exercised, mocking only the edges.
func newUserFixture() *userFixture {
	f := &userFixture{
		userRepo:  &MockUserRepository{},
		imageRepo: &MockImageRepository{},
		userCache: &MockUserCache{},
		storage:   &MockObjectStorage{},
	}

	f.userCache.GetUserFn = func(ctx context.Context, email string) (*domain.User, error) { return nil, nil }
	f.userCache.SetUserFn = func(ctx context.Context, user domain.User, ttl time.Duration) error { return nil }

	tokenSvc := services.NewTokenService(testConfig())
	sessionSvc := services.NewSessionService(f.userRepo, &MockBlacklistRepository{}, f.userCache, &MockTokenCache{}, tokenSvc, sessionCacheTTL)
	f.userSvc = services.NewUserService(f.userRepo, f.imageRepo, sessionSvc, f.storage)
	return f
}

func TestUserService_Profile_UnknownUser(t *testing.T) {
	f := newUserFixture()

	f.userRepo.FindUserByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}

	_, err := f.userSvc.Profile(context.Background(), "ghost")
	assertAppError(t, err, http.StatusNotFound, "User not found")
}

func TestUserService_ChangeUsername(t *testing.T) {
	t.Run("same username is a no-op", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.UpdateUsernameFn = func(ctx context.Context, email string, username string) error {
			t.Fatal("no write must happen when the username is unchanged")
			return nil
		}

		user := &domain.User{ID: 1, Username: "alice", Email: "alice@example.com"}
		assert.NoError(t, f.userSvc.ChangeUsername(context.Background(), user, "alice"))
	})

	t.Run("taken username", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.FindUserByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 2, Username: username}, nil
		}

		user := &domain.User{ID: 1, Username: "alice", Email: "alice@example.com"}
		err := f.userSvc.ChangeUsername(context.Background(), user, "bob")
		assertAppError(t, err, http.StatusConflict, "Username already taken")
	})

	t.Run("stores first, then rewrites the cached snapshot", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.FindUserByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
			return nil, apperrors.ErrNotFound
		}

		var stored bool
		f.userRepo.UpdateUsernameFn = func(ctx context.Context, email string, username string) error {
			stored = true
			return nil
		}
		// The refresh re-reads the row, so the cache only ever sees what
		// the database already holds.
		f.userRepo.FindUserByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
			require.True(t, stored, "cache refresh must not run before the database write")
			return &domain.User{ID: 1, Username: "alice2", Email: email}, nil
		}
		var cachedUsername string
		f.userCache.SetUserFn = func(ctx context.Context, user domain.User, ttl time.Duration) error {
			cachedUsername = user.Username
			return nil
		}

		user := &domain.User{ID: 1, Username: "alice", Email: "alice@example.com"}
		require.NoError(t, f.userSvc.ChangeUsername(context.Background(), user, "alice2"))
		assert.Equal(t, "alice2", cachedUsername)
	})
}

func TestUserService_SetBan(t *testing.T) {
	admin := &domain.User{ID: 1, Username: "root", Email: "root@example.com", Role: domain.RoleAdmin}

	t.Run("unknown user", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.FindUserByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
			return nil, apperrors.ErrNotFound
		}
		err := f.userSvc.SetBan(context.Background(), admin, "ghost", true)
		assertAppError(t, err, http.StatusNotFound, "User not found")
	})

	t.Run("cannot ban yourself", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.FindUserByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: username, Role: domain.RoleAdmin}, nil
		}
		err := f.userSvc.SetBan(context.Background(), admin, "root", true)
		assertAppError(t, err, http.StatusForbidden, "Operation forbidden")
	})

	t.Run("cannot ban a moderator", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.FindUserByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 2, Username: username, Role: domain.RoleModerator}, nil
		}
		err := f.userSvc.SetBan(context.Background(), admin, "mod", true)
		assertAppError(t, err, http.StatusForbidden, "Operation forbidden")
	})

	t.Run("sets the flag and leaves the cached session alone", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.FindUserByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 2, Username: username, Email: "bob@example.com", Role: domain.RoleUser}, nil
		}
		var bannedEmail string
		var bannedFlag bool
		f.userRepo.SetBannedFn = func(ctx context.Context, email string, banned bool) error {
			bannedEmail = email
			bannedFlag = banned
			return nil
		}
		// The ban takes effect on login and after cache TTL; the snapshot
		// is deliberately not touched.
		f.userCache.SetUserFn = func(ctx context.Context, user domain.User, ttl time.Duration) error {
			t.Fatal("ban must not rewrite the cached session")
			return nil
		}
		f.userCache.DeleteUserFn = func(ctx context.Context, email string) error {
			t.Fatal("ban must not evict the cached session")
			return nil
		}

		require.NoError(t, f.userSvc.SetBan(context.Background(), admin, "bob", true))
		assert.Equal(t, "bob@example.com", bannedEmail)
		assert.True(t, bannedFlag)
	})

	t.Run("unban clears the flag", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.FindUserByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 2, Username: username, Email: "bob@example.com", Role: domain.RoleUser, Banned: true}, nil
		}
		var bannedFlag bool
		f.userRepo.SetBannedFn = func(ctx context.Context, email string, banned bool) error {
			bannedFlag = banned
			return nil
		}

		require.NoError(t, f.userSvc.SetBan(context.Background(), admin, "bob", false))
		assert.False(t, bannedFlag)
	})
}

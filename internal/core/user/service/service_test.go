package userapp

import (
	"context"
	"errors"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"ripple/internal/core/user"
	userPort "ripple/internal/ports/user"
)

type memoryUserRepository struct {
	users map[string]*user.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: map[string]*user.User{}}
}

func (r *memoryUserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return nil, userPort.ErrUsernameTaken
		}
	}
	r.users[u.ID.Hex()] = u
	return u, nil
}

func (r *memoryUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, userPort.ErrUserNotFound
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userPort.ErrUserNotFound
	}
	return u, nil
}

var testKey = []byte("test-secret")

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newMemoryUserRepository(), testKey, zap.NewNop())

	t.Run("creates a user and never echoes the password", func(t *testing.T) {
		got, err := svc.RegisterUser(ctx, "alice", "Alice", "a.png", "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Username != "alice" || got.Name != "Alice" || got.Avatar != "a.png" {
			t.Errorf("unexpected user dto: %+v", got)
		}
		if got.ID == "" {
			t.Error("expected a generated id")
		}
	})

	t.Run("rejects duplicate usernames", func(t *testing.T) {
		_, err := svc.RegisterUser(ctx, "alice", "Other Alice", "", "pw")
		if !errors.Is(err, userPort.ErrUsernameTaken) {
			t.Fatalf("got error %v, want %v", err, userPort.ErrUsernameTaken)
		}
	})
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newMemoryUserRepository(), testKey, zap.NewNop())
	registered, err := svc.RegisterUser(ctx, "bob", "Bob", "b.png", "hunter2")
	if err != nil {
		t.Fatalf("registering: %v", err)
	}

	t.Run("issues a token whose subject is the user id", func(t *testing.T) {
		res, err := svc.LoginUser(ctx, "bob", "hunter2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims := &jwt.StandardClaims{}
		token, err := jwt.ParseWithClaims(res.Token, claims, func(t *jwt.Token) (interface{}, error) {
			return testKey, nil
		})
		if err != nil || !token.Valid {
			t.Fatalf("token does not verify: %v", err)
		}
		if claims.Subject != registered.ID {
			t.Errorf("token subject %q, want %q", claims.Subject, registered.ID)
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		if _, err := svc.LoginUser(ctx, "bob", "wrong"); err == nil {
			t.Fatal("expected an error for a bad password")
		}
	})

	t.Run("rejects an unknown user", func(t *testing.T) {
		if _, err := svc.LoginUser(ctx, "nobody", "pw"); err == nil {
			t.Fatal("expected an error for an unknown user")
		}
	})
}

func TestFindProfile(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newMemoryUserRepository(), testKey, zap.NewNop())
	registered, err := svc.RegisterUser(ctx, "carol", "Carol", "c.png", "pw")
	if err != nil {
		t.Fatalf("registering: %v", err)
	}

	t.Run("resolves name and avatar", func(t *testing.T) {
		profile, err := svc.FindProfile(ctx, registered.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profile.Name != "Carol" || profile.Avatar != "c.png" {
			t.Errorf("unexpected profile: %+v", profile)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.FindProfile(ctx, primitive.NewObjectID().Hex())
		if !errors.Is(err, userPort.ErrUserNotFound) {
			t.Fatalf("got error %v, want %v", err, userPort.ErrUserNotFound)
		}
	})
}

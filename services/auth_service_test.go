package services

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/danielessuu/backend-sd3/entity"
	"github.com/danielessuu/backend-sd3/repository"
	"github.com/danielessuu/backend-sd3/utils"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := setupDB(t)
	repo := repository.NewUserRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := repo.Create(&entity.User{Username: "staff", Password: string(hash)}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	return NewAuthService(repo, testSecret, time.Hour, 24*time.Hour)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)

	pair, err := svc.Login("staff", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatal("empty token in pair")
	}

	claims, err := utils.ParseToken(pair.Access, testSecret)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if claims.Type != utils.TokenTypeAccess || claims.Username != "staff" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Login("staff", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login("ghost", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefresh(t *testing.T) {
	svc := newAuthService(t)

	pair, err := svc.Login("staff", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	next, err := svc.Refresh(pair.Refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	claims, err := utils.ParseToken(next.Access, testSecret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Type != utils.TokenTypeAccess {
		t.Errorf("type = %q, want access", claims.Type)
	}

	// An access token is not accepted by the refresh flow.
	if _, err := svc.Refresh(pair.Access); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
	if _, err := svc.Refresh("garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestRefreshRejectsExpired(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewUserRepository(db)
	if err := repo.Create(&entity.User{Username: "staff", Password: "x"}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	svc := NewAuthService(repo, testSecret, time.Hour, -time.Minute)

	expired, err := utils.GenerateRefreshToken(1, "staff", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.Refresh(expired); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

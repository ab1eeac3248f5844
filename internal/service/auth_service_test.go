package service

import (
	"testing"
	"time"

	"clinic-management-backend/internal/models"
	"clinic-management-backend/internal/repository"
	"clinic-management-backend/pkg/utils"
)

type stubUserStore struct {
	users map[uint]*models.User
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[uint]*models.User)}
}

func (r *stubUserStore) FindByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubUserStore) FindByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserStore) Create(user *models.User) error {
	user.ID = uint(len(r.users) + 1)
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func newAuthService(users UserStore) *AuthService {
	utils.InitJWT("test-secret", time.Minute)
	return NewAuthService(users, &stubAudit{}, discardLogger)
}

func TestSignup_CreatesUserWithHashedPassword(t *testing.T) {
	store := newStubUserStore()
	svc := newAuthService(store)

	user, err := svc.Signup(SignupInput{Username: "alice", Password: "secret", Role: models.RolePatient, Name: "Alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Error("user id must be assigned")
	}
	if user.PasswordHash == "secret" || user.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if user.Role != models.RolePatient {
		t.Errorf("want role %q, got %q", models.RolePatient, user.Role)
	}
}

func TestSignup_RejectsDuplicateUsername(t *testing.T) {
	store := newStubUserStore()
	svc := newAuthService(store)

	if _, err := svc.Signup(SignupInput{Username: "alice", Password: "secret", Role: models.RolePatient}); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	_, err := svc.Signup(SignupInput{Username: "alice", Password: "other", Role: models.RoleDoctor})
	if err == nil || err.Error() != "Username already exists." {
		t.Errorf("want duplicate rejection, got %v", err)
	}
}

func TestLogin_IssuesAccessToken(t *testing.T) {
	store := newStubUserStore()
	svc := newAuthService(store)

	if _, err := svc.Signup(SignupInput{Username: "alice", Password: "secret", Role: models.RoleDoctor}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	result, err := svc.Login("alice", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AccessToken == "" {
		t.Fatal("access token must be issued")
	}

	claims, err := utils.ValidateAccessToken(result.AccessToken)
	if err != nil {
		t.Fatalf("token must validate: %v", err)
	}
	if claims.UserID != result.User.ID || claims.Role != models.RoleDoctor {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestLogin_SameMessageForUnknownUserAndWrongPassword(t *testing.T) {
	store := newStubUserStore()
	svc := newAuthService(store)

	if _, err := svc.Signup(SignupInput{Username: "alice", Password: "secret", Role: models.RolePatient}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, unknownErr := svc.Login("bob", "secret")
	_, wrongErr := svc.Login("alice", "wrong")

	if unknownErr == nil || wrongErr == nil {
		t.Fatal("both login attempts must fail")
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("failure messages must not distinguish the cause: %q vs %q", unknownErr, wrongErr)
	}
}

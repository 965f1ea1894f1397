package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tair/gog-commerce/internal/user/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
	"github.com/tair/gog-commerce/pkg/auth"
)

type memoryUsers struct {
	users []*domain.User
}

func (m *memoryUsers) Create(ctx context.Context, u *domain.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return apperror.New(apperror.ErrConflict, "Email already exists")
		}
	}
	u.ID = uint(len(m.users) + 1)
	cp := *u
	m.users = append(m.users, &cp)
	return nil
}

func (m *memoryUsers) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperror.New(apperror.ErrNotFound, "User not found")
}

func (m *memoryUsers) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperror.New(apperror.ErrNotFound, "User not found")
}

func (m *memoryUsers) FindAll(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memoryUsers) Update(ctx context.Context, u *domain.User) error {
	for i, existing := range m.users {
		if existing.ID == u.ID {
			cp := *u
			m.users[i] = &cp
			return nil
		}
	}
	return apperror.New(apperror.ErrNotFound, "User not found")
}

func newTokens() *auth.TokenManager {
	return auth.NewTokenManager("unit-test-secret", time.Hour)
}

func TestRegisterIssuesTokenForNewUser(t *testing.T) {
	repo := &memoryUsers{}
	tokens := newTokens()

	result, err := NewRegisterUserHandler(repo, tokens).Handle(context.Background(), RegisterUserCommand{
		Name:     "Yennefer",
		Email:    " Yen@Vengerberg.test ",
		Password: "lilac-and-gooseberries",
		Role:     "Seller",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	stored := repo.users[0]
	if stored.Email != "yen@vengerberg.test" || stored.Role != domain.RoleSeller {
		t.Errorf("stored = %+v", stored)
	}
	if stored.Password == "lilac-and-gooseberries" || !auth.CheckPassword(stored.Password, "lilac-and-gooseberries") {
		t.Error("password must be stored as a bcrypt hash")
	}

	claims, err := tokens.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if claims.UserID != stored.ID || claims.Email != stored.Email {
		t.Errorf("claims = %+v", claims)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &memoryUsers{}
	h := NewRegisterUserHandler(repo, newTokens())
	cmd := RegisterUserCommand{Name: "Ciri", Email: "ciri@cintra.test", Password: "zireael"}

	if _, err := h.Handle(context.Background(), cmd); err != nil {
		t.Fatal(err)
	}
	cmd.Name = "Impostor"
	result, err := h.Handle(context.Background(), cmd)
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
	if result != nil {
		t.Error("no result expected on conflict")
	}
	if len(repo.users) != 1 || repo.users[0].Name != "Ciri" {
		t.Errorf("users = %d, want the original only", len(repo.users))
	}
}

func TestRegisterValidation(t *testing.T) {
	h := NewRegisterUserHandler(&memoryUsers{}, newTokens())

	for _, cmd := range []RegisterUserCommand{
		{Email: "a@b.c", Password: "x"},
		{Name: "A", Password: "x"},
		{Name: "A", Email: "a@b.c"},
	} {
		if _, err := h.Handle(context.Background(), cmd); !errors.Is(err, apperror.ErrBadRequest) {
			t.Errorf("Handle(%+v) err = %v, want bad request", cmd, err)
		}
	}
}

func registered(t *testing.T, role string) (*memoryUsers, *auth.TokenManager) {
	t.Helper()
	repo := &memoryUsers{}
	tokens := newTokens()
	_, err := NewRegisterUserHandler(repo, tokens).Handle(context.Background(), RegisterUserCommand{
		Name: "Geralt", Email: "geralt@rivia.test", Password: "roach", Role: role,
	})
	if err != nil {
		t.Fatal(err)
	}
	return repo, tokens
}

func TestLogin(t *testing.T) {
	repo, tokens := registered(t, "admin")

	resp, err := NewLoginUserHandler(repo, tokens).Handle(context.Background(), LoginUserCommand{
		Email: "GERALT@rivia.test", Password: "roach",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := tokens.ValidateToken(resp.Token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Role != "admin" || claims.UserID != resp.User.ID {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo, tokens := registered(t, "")
	h := NewLoginUserHandler(repo, tokens)

	for _, cmd := range []LoginUserCommand{
		{Email: "geralt@rivia.test", Password: "wrong"},
		{Email: "nobody@rivia.test", Password: "roach"},
		{Email: "", Password: ""},
	} {
		resp, err := h.Handle(context.Background(), cmd)
		if !errors.Is(err, apperror.ErrUnauthorized) {
			t.Errorf("Handle(%+v) err = %v, want unauthorized", cmd, err)
		}
		if resp != nil {
			t.Errorf("Handle(%+v) issued a token", cmd)
		}
	}
}

func TestUpdateProfile(t *testing.T) {
	repo, _ := registered(t, "")
	h := NewUpdateProfileHandler(repo)
	profile := domain.Profile{MobileNumber: "555", Gender: "male", DOB: "1990-01-01", Location: "Kaer Morhen"}

	user, err := h.Handle(context.Background(), UpdateProfileCommand{ActorID: 1, UserID: 1, Profile: profile})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if user.Location != "Kaer Morhen" || repo.users[0].MobileNumber != "555" {
		t.Errorf("profile not saved: %+v", repo.users[0])
	}

	_, err = h.Handle(context.Background(), UpdateProfileCommand{ActorID: 2, ActorRole: "user", UserID: 1, Profile: profile})
	if !errors.Is(err, apperror.ErrForbidden) {
		t.Errorf("stranger err = %v, want forbidden", err)
	}

	if _, err := h.Handle(context.Background(), UpdateProfileCommand{ActorID: 9, ActorRole: "admin", UserID: 1, Profile: profile}); err != nil {
		t.Errorf("admin update: %v", err)
	}

	_, err = h.Handle(context.Background(), UpdateProfileCommand{ActorID: 9, ActorRole: "admin", UserID: 42, Profile: profile})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("missing user err = %v, want not found", err)
	}
}

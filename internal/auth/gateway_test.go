package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"paytrack/internal/apperr"
	"paytrack/internal/domain/accounts"
	"paytrack/internal/domain/storage/memory"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestGateway(t *testing.T) (*Gateway, accounts.Store) {
	t.Helper()
	store := memory.New().Accounts()
	g := NewGateway(store, NewJWTAuthenticator("test-secret", "paytrack", time.Hour), zap.NewNop().Sugar())
	return g, store
}

func validRegistration() RegisterInput {
	return RegisterInput{
		Name:        "Asha Shrestha",
		ShopName:    "Asha Kirana",
		PhoneNumber: "9841000000",
		Email:       "Asha@Example.com",
		Password:    "supersecret",
	}
}

func registerWithStatus(t *testing.T, g *Gateway, store accounts.Store, status accounts.Status) *accounts.Account {
	t.Helper()
	ctx := context.Background()

	a, err := g.Register(ctx, validRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if status != accounts.StatusPending {
		if a, err = store.UpdateStatus(ctx, a.ID, status); err != nil {
			t.Fatal(err)
		}
	}
	return a
}

func TestRegister_CreatesPendingUser(t *testing.T) {
	g, _ := newTestGateway(t)

	a, err := g.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if a.Status != accounts.StatusPending {
		t.Errorf("Status = %q, want pending", a.Status)
	}
	if a.Role != accounts.RoleUser {
		t.Errorf("Role = %q, want user", a.Role)
	}
	if a.Email != "asha@example.com" {
		t.Errorf("Email = %q, want lower-cased", a.Email)
	}
	if !a.Password.IsSet() || a.Password.Compare("supersecret") != nil {
		t.Error("password was not hashed")
	}
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *RegisterInput)
	}{
		{"malformed email", func(in *RegisterInput) { in.Email = "asha.example.com" }},
		{"short password", func(in *RegisterInput) { in.Password = "1234567" }},
		{"blank name", func(in *RegisterInput) { in.Name = "  " }},
		{"blank shop name", func(in *RegisterInput) { in.ShopName = "" }},
		{"blank phone", func(in *RegisterInput) { in.PhoneNumber = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGateway(t)
			in := validRegistration()
			tt.mutate(&in)

			_, err := g.Register(context.Background(), in)
			if !apperr.Is(err, apperr.KindValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	g, _ := newTestGateway(t)
	ctx := context.Background()

	if _, err := g.Register(ctx, validRegistration()); err != nil {
		t.Fatal(err)
	}

	in := validRegistration()
	in.Email = "ASHA@example.COM"
	_, err := g.Register(ctx, in)
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if apperr.MessageOf(err) != "Email already registered" {
		t.Errorf("message = %q", apperr.MessageOf(err))
	}
}

func TestLogin_BadCredentialsShareOneMessage(t *testing.T) {
	g, store := newTestGateway(t)
	registerWithStatus(t, g, store, accounts.StatusApproved)
	ctx := context.Background()

	_, wrongPassword := g.Login(ctx, "asha@example.com", "not-the-password")
	_, unknownEmail := g.Login(ctx, "nobody@example.com", "supersecret")

	for name, err := range map[string]error{"wrong password": wrongPassword, "unknown email": unknownEmail} {
		if !apperr.Is(err, apperr.KindAuth) {
			t.Errorf("%s: expected auth error, got %v", name, err)
		}
	}
	if apperr.MessageOf(wrongPassword) != apperr.MessageOf(unknownEmail) {
		t.Errorf("messages differ: %q vs %q", apperr.MessageOf(wrongPassword), apperr.MessageOf(unknownEmail))
	}
}

func TestLogin_ApprovalGate(t *testing.T) {
	for _, status := range []accounts.Status{accounts.StatusPending, accounts.StatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			g, store := newTestGateway(t)
			registerWithStatus(t, g, store, status)

			res, err := g.Login(context.Background(), "asha@example.com", "supersecret")
			if res != nil {
				t.Error("no token may be issued")
			}
			if !apperr.Is(err, apperr.KindForbidden) {
				t.Fatalf("expected forbidden, got %v", err)
			}
			if got := apperr.StatusOf(err); got != string(status) {
				t.Errorf("StatusOf() = %q, want %q", got, status)
			}
		})
	}
}

func TestLogin_WrongPasswordDoesNotRevealStatus(t *testing.T) {
	g, store := newTestGateway(t)
	registerWithStatus(t, g, store, accounts.StatusPending)

	_, err := g.Login(context.Background(), "asha@example.com", "wrong-password")
	if !apperr.Is(err, apperr.KindAuth) {
		t.Errorf("expected auth error, got %v", err)
	}
}

func TestLoginThenVerify(t *testing.T) {
	g, store := newTestGateway(t)
	a := registerWithStatus(t, g, store, accounts.StatusApproved)
	ctx := context.Background()

	res, err := g.Login(ctx, "ASHA@example.com", "supersecret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if res.Token == "" || res.Account.ID != a.ID {
		t.Fatalf("unexpected login result %+v", res)
	}

	id, err := g.Verify(ctx, res.Token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if id.ID != a.ID || id.Email != "asha@example.com" || id.Role != accounts.RoleUser || id.Status != accounts.StatusApproved {
		t.Errorf("unexpected identity %+v", id)
	}
}

func TestVerify_RefetchesAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("status revoked after login", func(t *testing.T) {
		g, store := newTestGateway(t)
		a := registerWithStatus(t, g, store, accounts.StatusApproved)
		res, err := g.Login(ctx, "asha@example.com", "supersecret")
		if err != nil {
			t.Fatal(err)
		}

		if _, err := store.UpdateStatus(ctx, a.ID, accounts.StatusRejected); err != nil {
			t.Fatal(err)
		}

		_, err = g.Verify(ctx, res.Token)
		if !apperr.Is(err, apperr.KindForbidden) || apperr.StatusOf(err) != "rejected" {
			t.Errorf("expected forbidden/rejected, got %v", err)
		}
	})

	t.Run("account deleted after login", func(t *testing.T) {
		g, store := newTestGateway(t)
		a := registerWithStatus(t, g, store, accounts.StatusApproved)
		res, err := g.Login(ctx, "asha@example.com", "supersecret")
		if err != nil {
			t.Fatal(err)
		}

		if err := store.Delete(ctx, a.ID); err != nil {
			t.Fatal(err)
		}

		if _, err := g.Verify(ctx, res.Token); !apperr.Is(err, apperr.KindAuth) {
			t.Errorf("expected auth error, got %v", err)
		}
	})
}

func TestVerify_BadTokens(t *testing.T) {
	g, _ := newTestGateway(t)
	ctx := context.Background()

	foreign, _ := NewJWTAuthenticator("another-secret", "paytrack", time.Hour).GenerateToken(uuid.New(), "x@y.z", "admin")
	unknown, _ := NewJWTAuthenticator("test-secret", "paytrack", time.Hour).GenerateToken(uuid.New(), "x@y.z", "admin")

	for name, token := range map[string]string{
		"empty":           "",
		"garbage":         "abc.def.ghi",
		"wrong key":       foreign,
		"unknown account": unknown,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := g.Verify(ctx, token); !apperr.Is(err, apperr.KindAuth) {
				t.Errorf("expected auth error, got %v", err)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		g, store := newTestGateway(t)
		a := registerWithStatus(t, g, store, accounts.StatusApproved)

		err := g.ChangePassword(ctx, a.ID, ChangePasswordInput{CurrentPassword: "supersecret", NewPassword: "evenmoresecret"})
		if err != nil {
			t.Fatalf("ChangePassword() error = %v", err)
		}

		if _, err := g.Login(ctx, "asha@example.com", "supersecret"); !apperr.Is(err, apperr.KindAuth) {
			t.Errorf("old password still accepted: %v", err)
		}
		if _, err := g.Login(ctx, "asha@example.com", "evenmoresecret"); err != nil {
			t.Errorf("new password rejected: %v", err)
		}
	})

	t.Run("incorrect current password", func(t *testing.T) {
		g, store := newTestGateway(t)
		a := registerWithStatus(t, g, store, accounts.StatusApproved)

		err := g.ChangePassword(ctx, a.ID, ChangePasswordInput{CurrentPassword: "nope-nope", NewPassword: "evenmoresecret"})
		if apperr.MessageOf(err) != "Incorrect current password" {
			t.Errorf("unexpected error %v", err)
		}
	})

	t.Run("short new password", func(t *testing.T) {
		g, store := newTestGateway(t)
		a := registerWithStatus(t, g, store, accounts.StatusApproved)

		err := g.ChangePassword(ctx, a.ID, ChangePasswordInput{CurrentPassword: "supersecret", NewPassword: "short"})
		if !apperr.Is(err, apperr.KindValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		g, _ := newTestGateway(t)

		err := g.ChangePassword(ctx, uuid.New(), ChangePasswordInput{CurrentPassword: "supersecret", NewPassword: "evenmoresecret"})
		if !apperr.Is(err, apperr.KindNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
	})
}

func TestRequireRole(t *testing.T) {
	admin := &Identity{ID: uuid.New(), Role: accounts.RoleAdmin}
	user := &Identity{ID: uuid.New(), Role: accounts.RoleUser}

	if err := RequireRole(admin, accounts.RoleAdmin); err != nil {
		t.Errorf("admin rejected: %v", err)
	}
	if err := RequireRole(user, accounts.RoleAdmin); !apperr.Is(err, apperr.KindForbidden) {
		t.Errorf("expected forbidden, got %v", err)
	}
	if err := RequireRole(nil, accounts.RoleAdmin); !apperr.Is(err, apperr.KindAuth) {
		t.Errorf("expected auth error, got %v", err)
	}
}

func TestIdentityContext(t *testing.T) {
	ctx := context.Background()
	if IdentityFrom(ctx) != nil {
		t.Error("expected nil identity")
	}

	id := &Identity{ID: uuid.New()}
	if got := IdentityFrom(WithIdentity(ctx, id)); got != id {
		t.Errorf("IdentityFrom() = %v, want %v", got, id)
	}
}

func TestPassword_MultibyteOverBcryptLimit(t *testing.T) {
	// 40 runes, 80 bytes
	long := strings.Repeat("é", 40)
	ctx := context.Background()

	t.Run("register", func(t *testing.T) {
		g, _ := newTestGateway(t)

		in := validRegistration()
		in.Password = long
		if _, err := g.Register(ctx, in); !apperr.Is(err, apperr.KindValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("change password", func(t *testing.T) {
		g, store := newTestGateway(t)
		a := registerWithStatus(t, g, store, accounts.StatusApproved)

		err := g.ChangePassword(ctx, a.ID, ChangePasswordInput{CurrentPassword: "supersecret", NewPassword: long})
		if !apperr.Is(err, apperr.KindValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("multibyte within limit", func(t *testing.T) {
		g, _ := newTestGateway(t)

		in := validRegistration()
		in.Password = strings.Repeat("é", 36)
		if _, err := g.Register(ctx, in); err != nil {
			t.Errorf("Register() error = %v", err)
		}
	})
}

func TestLogin_MalformedEmail(t *testing.T) {
	g, store := newTestGateway(t)
	registerWithStatus(t, g, store, accounts.StatusApproved)

	tests := []struct {
		name  string
		email string
		want  apperr.Kind
	}{
		{"not an address", "asha-at-example", apperr.KindValidation},
		{"missing domain", "asha@", apperr.KindValidation},
		{"empty", "", apperr.KindValidation},
		{"valid but unknown", "nobody@example.com", apperr.KindAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Login(context.Background(), tt.email, "supersecret")
			if got := apperr.KindOf(err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v (err %v)", got, tt.want, err)
			}
		})
	}
}

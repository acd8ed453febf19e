package auth

import (
	"context"
	"errors"
	"strings"

	"paytrack/internal/apperr"
	"paytrack/internal/domain/accounts"
	"paytrack/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgInvalidCredentials = "Invalid email or password"
	msgPending            = "Your account is pending approval. Please wait for admin to approve your account."
	msgRejected           = "Your account has been rejected. Please contact admin."

	// bcrypt refuses longer input; validator's max counts runes, not bytes.
	maxPasswordBytes = 72
)

func checkPasswordBytes(field, pw string) error {
	if len(pw) > maxPasswordBytes {
		return apperr.Validation(field + " must be at most 72 bytes")
	}
	return nil
}

// Gateway registers accounts, checks credentials and issues and verifies
// session tokens. No token is ever issued or honored for an account that is
// not approved.
type Gateway struct {
	accounts accounts.Store
	auth     Authenticator
	logger   *zap.SugaredLogger
}

func NewGateway(store accounts.Store, authenticator Authenticator, logger *zap.SugaredLogger) *Gateway {
	return &Gateway{accounts: store, auth: authenticator, logger: logger}
}

type RegisterInput struct {
	Name        string `json:"name" validate:"notblank,max=100"`
	ShopName    string `json:"shopName" validate:"notblank,max=150"`
	PhoneNumber string `json:"phoneNumber" validate:"notblank,max=20"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
}

// Register creates a pending user account. Role and status are never taken
// from the caller.
func (g *Gateway) Register(ctx context.Context, in RegisterInput) (*accounts.Account, error) {
	in.Email = accounts.NormalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := checkPasswordBytes("password", in.Password); err != nil {
		return nil, err
	}

	shop := strings.TrimSpace(in.ShopName)
	phone := strings.TrimSpace(in.PhoneNumber)

	account := &accounts.Account{
		Name:        strings.TrimSpace(in.Name),
		ShopName:    &shop,
		PhoneNumber: &phone,
		Email:       in.Email,
		Role:        accounts.RoleUser,
		Status:      accounts.StatusPending,
	}

	if err := account.Password.Set(in.Password); err != nil {
		return nil, apperr.Internal("failed to process password", err)
	}

	if err := g.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, accounts.ErrDuplicateEmail) {
			return nil, apperr.Conflict("Email already registered")
		}
		return nil, apperr.Internal("failed to register account", err)
	}

	g.logger.Infow("account registered", "account_id", account.ID, "email", account.Email)

	return account, nil
}

type LoginResult struct {
	Token   string            `json:"token"`
	Account *accounts.Account `json:"user"`
}

// Login checks credentials and then the approval gate. Unknown email and
// wrong password produce the same error.
func (g *Gateway) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}
	if err := validation.Var("email", strings.TrimSpace(email), "email"); err != nil {
		return nil, err
	}

	account, err := g.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil, apperr.Auth(msgInvalidCredentials)
		}
		return nil, apperr.Internal("login failed", err)
	}

	if err := account.Password.Compare(password); err != nil {
		return nil, apperr.Auth(msgInvalidCredentials)
	}

	if err := approvalGate(account); err != nil {
		return nil, err
	}

	token, err := g.auth.GenerateToken(account.ID, account.Email, string(account.Role))
	if err != nil {
		return nil, apperr.Internal("failed to issue token", err)
	}

	return &LoginResult{Token: token, Account: account}, nil
}

// Verify validates a bearer token and reloads the account it names. The
// account's current status decides, not what the token says.
func (g *Gateway) Verify(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, apperr.Auth("No token provided")
	}

	claims, err := g.auth.ValidateToken(token)
	if err != nil {
		return nil, apperr.Auth("Invalid or expired token")
	}

	id, err := claims.AccountID()
	if err != nil {
		return nil, apperr.Auth("Invalid or expired token")
	}

	account, err := g.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil, apperr.Auth("User not found")
		}
		return nil, apperr.Internal("failed to verify token", err)
	}

	if err := approvalGate(account); err != nil {
		return nil, err
	}

	return NewIdentity(account), nil
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
}

// ChangePassword replaces the hash after checking the current password.
// Tokens issued before the change stay valid until they expire.
func (g *Gateway) ChangePassword(ctx context.Context, accountID uuid.UUID, in ChangePasswordInput) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	if err := checkPasswordBytes("newPassword", in.NewPassword); err != nil {
		return err
	}

	account, err := g.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return apperr.NotFound("User not found")
		}
		return apperr.Internal("failed to update password", err)
	}

	if err := account.Password.Compare(in.CurrentPassword); err != nil {
		return apperr.Validation("Incorrect current password")
	}

	if err := account.Password.Set(in.NewPassword); err != nil {
		return apperr.Internal("failed to update password", err)
	}

	if err := g.accounts.UpdatePassword(ctx, account); err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return apperr.NotFound("User not found")
		}
		return apperr.Internal("failed to update password", err)
	}

	g.logger.Infow("password changed", "account_id", account.ID)

	return nil
}

func approvalGate(a *accounts.Account) error {
	switch a.Status {
	case accounts.StatusApproved:
		return nil
	case accounts.StatusRejected:
		return apperr.ForbiddenStatus(msgRejected, string(a.Status))
	default:
		return apperr.ForbiddenStatus(msgPending, string(a.Status))
	}
}

package auth

import (
	"context"

	"paytrack/internal/apperr"
	"paytrack/internal/domain/accounts"

	"github.com/google/uuid"
)

// Identity is the verified caller attached to a request.
type Identity struct {
	ID     uuid.UUID       `json:"id"`
	Email  string          `json:"email"`
	Role   accounts.Role   `json:"role"`
	Status accounts.Status `json:"status"`

	Account *accounts.Account `json:"-"`
}

func NewIdentity(a *accounts.Account) *Identity {
	return &Identity{
		ID:      a.ID,
		Email:   a.Email,
		Role:    a.Role,
		Status:  a.Status,
		Account: a,
	}
}

func (i *Identity) IsAdmin() bool { return i != nil && i.Role == accounts.RoleAdmin }

type identityKey string

const identityCtx identityKey = "identity"

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityCtx, id)
}

// IdentityFrom returns the identity stored by WithIdentity, or nil.
func IdentityFrom(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityCtx).(*Identity)
	return id
}

// RequireRole fails with a forbidden error unless id holds role.
func RequireRole(id *Identity, role accounts.Role) error {
	if id == nil {
		return apperr.Auth("authentication required")
	}
	if id.Role != role {
		return apperr.Forbidden("Access denied. " + string(role) + " role required.")
	}
	return nil
}

package accounts

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound          = errors.New("account not found")
	ErrDuplicateEmail    = errors.New("an account with that email already exists")
	QueryTimeoutDuration = time.Second * 5
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Account struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ShopName    *string   `json:"shopName,omitempty"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	Email       string    `json:"email"`
	Password    password  `json:"-"`
	Role        Role      `json:"role"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (a *Account) IsAdmin() bool { return a.Role == RoleAdmin }

// Stats are the moderation dashboard counters.
type Stats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// NormalizeEmail lower-cases and trims an address; emails are unique
// regardless of case.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// password keeps the bcrypt hash; the plaintext never leaves Set.
type password struct {
	hash []byte
}

func (p *password) Set(text string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(text), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	p.hash = hash
	return nil
}

// Compare returns nil when text matches the stored hash.
func (p *password) Compare(text string) error {
	return bcrypt.CompareHashAndPassword(p.hash, []byte(text))
}

func (p *password) IsSet() bool { return len(p.hash) > 0 }

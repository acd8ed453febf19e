package customers

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("customer not found")
	QueryTimeoutDuration = time.Second * 5
)

type Customer struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// OwnedBy reports whether the customer belongs to the given account.
func (c *Customer) OwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}

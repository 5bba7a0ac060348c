package domain

import "errors"

// DefaultServiceDomain is the service namespace the host routes card calls to.
const DefaultServiceDomain = "homegrocer"

var (
	ErrMissingConnectionID = errors.New("connectionId is required")
	ErrMissingListID       = errors.New("listId is required")
)

// CardConfig identifies the backend connection and target resource for one
// card instance. It is supplied once and never mutated afterwards.
type CardConfig struct {
	ConnectionID  string
	ListID        string
	Title         string
	ServiceDomain string
}

// Validate checks the fields every card needs. The shopping-list card
// additionally requires ListID, which it checks itself.
func (c CardConfig) Validate() error {
	if c.ConnectionID == "" {
		return ErrMissingConnectionID
	}
	return nil
}

// Domain returns the service namespace, falling back to the default.
func (c CardConfig) Domain() string {
	if c.ServiceDomain == "" {
		return DefaultServiceDomain
	}
	return c.ServiceDomain
}

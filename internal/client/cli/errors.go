package cli

import (
	"errors"

	"github.com/dmitrijs2005/voltshop/internal/client/api"
	"github.com/dmitrijs2005/voltshop/internal/client/auth"
	"github.com/dmitrijs2005/voltshop/internal/client/cart"
	"github.com/dmitrijs2005/voltshop/internal/client/services"
)

var errUsage = errors.New("usage")

type usageError string

func (u usageError) Error() string { return "Usage: " + string(u) }
func (u usageError) Unwrap() error { return errUsage }

// describeError turns a command error into the line shown to the user.
func describeError(err error) string {
	var ue usageError
	switch {
	case errors.As(err, &ue):
		return ue.Error()
	case errors.Is(err, auth.ErrAuthRequired):
		return "Session expired, please login."
	case errors.Is(err, services.ErrEmptyCart):
		return "Your cart is empty."
	case errors.Is(err, cart.ErrInvalidQuantity):
		return "Quantity must be a positive number."
	case errors.Is(err, api.ErrNotFound):
		return "Not found."
	case errors.Is(err, api.ErrUnauthorized):
		return "Access denied: " + err.Error()
	case errors.Is(err, api.ErrUnavailable):
		return "Server unavailable, try again later."
	default:
		return "Error: " + err.Error()
	}
}

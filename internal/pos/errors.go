package pos

import (
	"net/http"

	"kamakpos/m/internal/core/errx"
)

var (
	ErrLineNotFound        = errx.New(errx.ErrNotFound, http.StatusNotFound, "Product is not in the cart.")
	ErrLineConfirmed       = errx.New(errx.ErrValidation, http.StatusConflict, "Confirmed products cannot be changed.")
	ErrInvalidQuantity     = errx.Validation("Quantity must be greater than zero.")
	ErrInvalidPrice        = errx.Validation("Price cannot be negative.")
	ErrInvalidDiscount     = errx.Validation("Discount must be between 0 and 100.")
	ErrInvalidAmount       = errx.Validation("Please enter a valid payment amount.")
	ErrInvalidMethod       = errx.Validation("Payment method must be cash, card or mobile.")
	ErrPaymentIncomplete   = errx.Validation("Payment not complete.")
	ErrNotAllConfirmed     = errx.Validation("All products must be confirmed to print the receipt.")
	ErrEmptyOrder          = errx.Validation("There are no products to print.")
	ErrNoOrderSelected     = errx.Validation("Please select an order first.")
	ErrMissingSession      = errx.Validation("Missing staff or company information. Please log in again.")
	ErrMissingCustomerInfo = errx.Validation("Missing required fields for saving customer info.")
	ErrUnknownCustomer     = errx.New(errx.ErrNotFound, http.StatusNotFound, "Customer not found.")
	ErrUnknownOrder        = errx.New(errx.ErrNotFound, http.StatusNotFound, "Order not found.")
)

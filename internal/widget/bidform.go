package widget

import (
	"context"
	"math"
	"strconv"
	"strings"

	"rbay-web/internal/backend"
	"rbay-web/internal/weberrors"
)

// BidSuccessMessage is shown after the backend accepts a bid
const BidSuccessMessage = "Success! You have the winning bid"

// BidForm drives one bid submission for an item. An amount that fails local
// validation never reaches the network; an accepted bid clears the field and
// records the success message, leaving price and bid count to the next
// authoritative fetch.
type BidForm struct {
	client     backend.Client
	itemID     string
	authCookie string

	amount  string
	errText string
	message string
}

// NewBidForm creates a bid form bound to one item and viewer
func NewBidForm(client backend.Client, itemID, authCookie string) *BidForm {
	return &BidForm{
		client:     client,
		itemID:     itemID,
		authCookie: authCookie,
	}
}

// ParseAmount interprets the raw field value as a bid amount. Only a finite
// number greater than zero passes.
func ParseAmount(raw string) (float64, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) || parsed <= 0 {
		return 0, weberrors.ErrInvalidAmount
	}
	return parsed, nil
}

// Submit validates the raw amount and posts it to the item's bid endpoint.
// Validation failures set the error text without any network call.
func (f *BidForm) Submit(ctx context.Context, rawAmount string) {
	f.amount = rawAmount
	f.errText = ""
	f.message = ""

	parsed, err := ParseAmount(rawAmount)
	if err != nil {
		f.errText = "Enter a valid amount"
		return
	}

	if err := f.client.PlaceBid(ctx, f.authCookie, f.itemID, parsed); err != nil {
		f.errText = err.Error()
		return
	}

	f.amount = ""
	f.message = BidSuccessMessage
}

// Amount returns the current field value
func (f *BidForm) Amount() string { return f.amount }

// Err returns the current error text, empty when none
func (f *BidForm) Err() string { return f.errText }

// Message returns the success message, empty until a bid is accepted
func (f *BidForm) Message() string { return f.message }

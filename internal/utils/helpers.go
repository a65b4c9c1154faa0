package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

// East African Time timezone
var EATLocation *time.Location

func init() {
	var err error
	EATLocation, err = time.LoadLocation("Africa/Nairobi")
	if err != nil {
		// Fallback to fixed offset if timezone data is not available
		EATLocation = time.FixedZone("EAT", 3*60*60)
		log.Printf("Warning: Could not load Africa/Nairobi timezone, using fixed offset: %v", err)
	}
}

// NowEAT returns the current time in East African Time
func NowEAT() time.Time {
	return time.Now().In(EATLocation)
}

// Round2 rounds a monetary amount to two decimal places.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// FormatCurrency formats an amount as Kenyan Shilling currency
func FormatCurrency(amount decimal.Decimal) string {
	return fmt.Sprintf("KSh %s", amount.StringFixed(2))
}

// SameCalendarDay reports whether two timestamps fall on the same calendar
// day. Each timestamp is read in its own location; no extra timezone
// normalization is applied beyond what the timestamp encodes.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

package listings

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatPrice renders a price in rupees without decimals, with the period
// suffix of rentals (/month) and leases (/year).
func FormatPrice(price float64, purpose Purpose) string {
	formatted := "₹" + inrPrinter.Sprintf("%d", int64(math.Round(price)))
	switch purpose {
	case PurposeRent:
		return formatted + "/month"
	case PurposeLease:
		return formatted + "/year"
	}
	return formatted
}

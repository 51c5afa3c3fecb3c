package catalog

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// pricePattern matches the taka glyph, optional whitespace (Unicode space
// separators such as NBSP included), then a number with at most one decimal
// point.
var pricePattern = regexp.MustCompile(`৳[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]*(\d+(?:\.\d+)?|\.\d+)`)

// ExtractPrice returns the first taka amount embedded in a package container
// description such as "10's pack: ৳ 12.50". Missing or unparseable amounts
// yield zero.
func ExtractPrice(container *string) decimal.Decimal {
	if container == nil || *container == "" {
		return decimal.Zero
	}

	match := pricePattern.FindStringSubmatch(*container)
	if match == nil {
		return decimal.Zero
	}

	token := match[1]
	if token[0] == '.' {
		token = "0" + token
	}

	price, err := decimal.NewFromString(token)
	if err != nil || price.IsNegative() {
		return decimal.Zero
	}

	return price
}

package utils

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatUSD renders an amount as US currency with thousands separators, e.g. $49,500.00.
func FormatUSD(amount float64) string {
	return printer.Sprintf("$%.2f", amount)
}

// FormatCount renders an integer with thousands separators, e.g. 5,000.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatPercent renders a percentage without trailing zeros, e.g. 12.5%.
func FormatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// FormatPercentOff renders a rounded discount label, e.g. 10% off.
func FormatPercentOff(pct float64) string {
	return printer.Sprintf("%.0f%% off", pct)
}

// FormatUSDWhole renders an amount rounded to whole dollars, e.g. $1,299.
func FormatUSDWhole(amount float64) string {
	return printer.Sprintf("$%.0f", amount)
}

// FormatMillions renders an amount given in millions, e.g. $4.5M.
func FormatMillions(millions float64) string {
	return "$" + strconv.FormatFloat(millions, 'f', -1, 64) + "M"
}

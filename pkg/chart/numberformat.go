package chart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberFormatter is the instance's numeric-formatting helper. Instances
// create it lazily on first access; most never touch it.
type NumberFormatter struct {
	printer *message.Printer
}

func newNumberFormatter() *NumberFormatter {
	return &NumberFormatter{printer: message.NewPrinter(language.English)}
}

// Format renders a number with locale-aware grouping.
func (f *NumberFormatter) Format(v float64) string {
	return f.printer.Sprintf("%v", number.Decimal(v))
}

// FormatScale renders a number with a fixed number of fraction digits.
func (f *NumberFormatter) FormatScale(v float64, digits int) string {
	return f.printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(digits), number.MaxFractionDigits(digits)))
}

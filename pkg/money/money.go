// Package money holds the locale-aware price formatting used when showing and
// reading prices on the client side. Everything here is a pure function of a
// locale tag and its input; the server always works with canonical numerics.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Params are the locale-dependent pieces needed to render and read a price.
type Params struct {
	// DecimalSep separates the integer and fractional digits, ',' for pt-BR.
	DecimalSep rune
	// GroupSep separates digit groups, 0 when the locale does not group.
	GroupSep rune
	// Symbol is the currency symbol of the locale's region, "R$" for pt-BR.
	Symbol string
}

// ParamsFor derives formatting parameters for the given locale by probing the
// CLDR data behind x/text with a known number.
func ParamsFor(tag language.Tag) Params {
	pr := message.NewPrinter(tag)
	probe := pr.Sprintf("%v", number.Decimal(1234567.89, number.Scale(2)))

	p := Params{DecimalSep: '.'}
	var seps []rune
	for _, r := range probe {
		if !unicode.IsDigit(r) {
			seps = append(seps, r)
		}
	}
	if len(seps) > 0 {
		p.DecimalSep = seps[len(seps)-1]
	}
	if len(seps) > 1 {
		p.GroupSep = seps[0]
	}

	p.Symbol = symbolFor(tag)
	return p
}

func symbolFor(tag language.Tag) string {
	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		unit = currency.USD
	}
	sym := message.NewPrinter(tag).Sprint(currency.Symbol(unit))
	if sym == "" {
		return unit.String()
	}
	return sym
}

// Format renders v as a locale price string with two decimal digits,
// e.g. "R$ 2.500,00" for pt-BR.
func Format(p Params, v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	var sign string
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if p.GroupSep != 0 && i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune(p.GroupSep)
		}
		b.WriteRune(r)
	}

	return fmt.Sprintf("%s %s%s%c%s", p.Symbol, sign, b.String(), p.DecimalSep, frac)
}

// Parse reads a locale price string back into its canonical numeric value.
// The currency symbol, group separators and spacing are tolerated; anything
// else is an error.
func Parse(p Params, s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimPrefix(s, p.Symbol))

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == p.DecimalSep:
			b.WriteRune('.')
		case r == p.GroupSep && p.GroupSep != 0:
		case r == ' ' || r == ' ':
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		default:
			return 0, fmt.Errorf("unexpected character %q in amount %q", r, s)
		}
	}
	if b.Len() == 0 {
		return 0, errors.New("empty amount")
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return v, nil
}

// AcceptRune reports whether typing r after current keeps the amount well
// formed: digits, at most one decimal separator, group separators only before
// it, and no more than two decimal digits.
func AcceptRune(p Params, current string, r rune) bool {
	sepIdx := strings.IndexRune(current, p.DecimalSep)

	switch {
	case r == p.DecimalSep:
		return sepIdx < 0
	case r == p.GroupSep && p.GroupSep != 0:
		return sepIdx < 0
	case r >= '0' && r <= '9':
		if sepIdx < 0 {
			return true
		}
		decimals := current[sepIdx+len(string(p.DecimalSep)):]
		return len(decimals) < 2
	default:
		return false
	}
}

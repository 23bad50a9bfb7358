// SPDX-License-Identifier: MIT

package breaks

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMethod resolves a case-insensitive method name into a Method.
// categories ≤ 0 falls back to DefaultCategories and factor == 0 to
// DefaultFactor. Quantile names fix their own count and ignore categories:
//
//	equidistant, equal-interval      Equidistant(categories)
//	quartiles, quintiles, deciles    Quantile(4), Quantile(5), Quantile(10)
//	quantile:<q>, quantile(<q>)      Quantile(q)
//	progressive, geometric           Progressive(factor, categories)
//	weber-fechner, wf                WeberFechner(factor, categories)
//
// Unrecognized names return ErrUnknownMethod; they never fall through.
func ParseMethod(name string, categories int, factor float64) (Method, error) {
	if categories <= 0 {
		categories = DefaultCategories
	}
	if factor == 0 {
		factor = DefaultFactor
	}

	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "equidistant", "equal-interval", "equal":
		return NewEquidistant(categories)
	case "quartiles":
		return NewQuantile(4)
	case "quintiles":
		return NewQuantile(5)
	case "deciles":
		return NewQuantile(10)
	case "progressive", "geometric":
		return NewProgressive(factor, categories)
	case "weber-fechner", "weberfechner", "wf":
		return NewWeberFechner(factor, categories)
	}

	if q, ok := parseQuantileCount(key); ok {
		return NewQuantile(q)
	}

	return Method{}, fmt.Errorf("%q: %w", name, ErrUnknownMethod)
}

// parseQuantileCount accepts "quantile:<q>" and "quantile(<q>)".
func parseQuantileCount(key string) (int, bool) {
	var rest string
	switch {
	case strings.HasPrefix(key, "quantile:"):
		rest = strings.TrimPrefix(key, "quantile:")
	case strings.HasPrefix(key, "quantile(") && strings.HasSuffix(key, ")"):
		rest = strings.TrimSuffix(strings.TrimPrefix(key, "quantile("), ")")
	default:
		return 0, false
	}
	q, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, false
	}

	return q, true
}

// ShortName encodes the method and its parameters for naming output
// artifacts and attribute fields, e.g. "equidistant_5cats", "quartiles",
// "quantiles_7", "pg_2_5cats", "wf_1_5_4cats".
func (m Method) ShortName() string {
	switch m.Kind {
	case Equidistant:
		return fmt.Sprintf("equidistant_%dcats", m.Categories)
	case Quantile:
		switch m.Categories {
		case 4:
			return "quartiles"
		case 5:
			return "quintiles"
		case 10:
			return "deciles"
		default:
			return fmt.Sprintf("quantiles_%d", m.Categories)
		}
	case Progressive:
		return fmt.Sprintf("pg_%s_%dcats", factorToken(m.Factor), m.Categories)
	case WeberFechner:
		return fmt.Sprintf("wf_%s_%dcats", factorToken(m.Factor), m.Categories)
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m.Kind {
	case Progressive, WeberFechner:
		return fmt.Sprintf("%s(factor=%g, categories=%d)", m.Kind, m.Factor, m.Categories)
	default:
		return fmt.Sprintf("%s(categories=%d)", m.Kind, m.Categories)
	}
}

// factorToken renders the factor without a decimal point: 2 → "2", 1.5 → "1_5".
func factorToken(fp float64) string {
	s := strconv.FormatFloat(fp, 'f', -1, 64)
	return strings.NewReplacer(".", "_", "-", "m").Replace(s)
}

// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"math"
	"sort"
)

type function struct {
	min, max int // max < 0 means variadic
	call     func(args ...any) (any, error)
}

var functions = map[string]function{
	"logical_and": {min: 2, max: -1, call: func(args ...any) (any, error) {
		for _, a := range args {
			ok, err := truth(a)
			if err != nil || !ok {
				return 0.0, err
			}
		}
		return 1.0, nil
	}},
	"logical_or": {min: 2, max: -1, call: func(args ...any) (any, error) {
		for _, a := range args {
			ok, err := truth(a)
			if err != nil || ok {
				return boolean(ok), err
			}
		}
		return 0.0, nil
	}},
	"logical_not": {min: 1, max: 1, call: func(args ...any) (any, error) {
		ok, err := truth(args[0])
		return boolean(!ok), err
	}},
	"where": {min: 3, max: 3, call: func(args ...any) (any, error) {
		ok, err := truth(args[0])
		if err != nil {
			return nil, err
		}
		if ok {
			return number(args[1])
		}
		return number(args[2])
	}},
	"abs":     {min: 1, max: 1, call: unary(math.Abs)},
	"minimum": {min: 2, max: 2, call: binary(math.Min)},
	"maximum": {min: 2, max: 2, call: binary(math.Max)},
}

// Functions lists the supported function names in sorted order.
func Functions() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func unary(fn func(float64) float64) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		a, err := number(args[0])
		if err != nil {
			return nil, err
		}
		return fn(a), nil
	}
}

func binary(fn func(a, b float64) float64) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		a, err := number(args[0])
		if err != nil {
			return nil, err
		}
		b, err := number(args[1])
		if err != nil {
			return nil, err
		}
		return fn(a, b), nil
	}
}

// number folds an evaluated value into a float64; booleans become 1 or 0.
func number(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case bool:
		return boolean(n), nil
	default:
		return 0, fmt.Errorf("%v (%T) is not a number: %w", v, v, ErrSyntax)
	}
}

func truth(v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	n, err := number(v)
	return n != 0, err
}

func boolean(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

package assert

//
// assert.go
// based on https://antonz.org/do-not-testify/
//

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// Equal asserts that got is equal to want.
func Equal[T any](tb testing.TB, got, want T) bool {
	tb.Helper()

	if !areEqual(got, want) {
		tb.Errorf("got: %#v; want: %#v", got, want)

		return false
	}

	return true
}

// NotEqual asserts that got is no equal to want.
func NotEqual[T any](tb testing.TB, got, want T) bool {
	tb.Helper()

	if areEqual(got, want) {
		tb.Errorf("got: %#v; want other values", got)

		return false
	}

	return true
}

// NoErr asserts that the got error is nil.
func NoErr(tb testing.TB, got error) bool {
	tb.Helper()

	if got != nil {
		tb.Errorf("got unexpected error: %#+v", got)

		return false
	}

	return true
}

// Err asserts that got is an error. Optional want is matched by errors.Is
// (for error) or as substring of the message (for string).
func Err(tb testing.TB, got error, want ...any) bool {
	tb.Helper()

	if got == nil {
		tb.Errorf("got: <nil>; want: error %v", want)

		return false
	}

	for _, w := range want {
		switch wanttype := w.(type) {
		case string:
			if !strings.Contains(got.Error(), wanttype) {
				tb.Errorf("got: %q; want: %q", got.Error(), wanttype)

				return false
			}
		case error:
			if !errors.Is(got, wanttype) {
				tb.Errorf("got: %T(%v); want: %T(%v)", got, got, wanttype, wanttype)

				return false
			}
		default:
			tb.Errorf("unsupported want type: %T", w)

			return false
		}
	}

	return true
}

// True asserts that got is true.
func True(tb testing.TB, got bool) bool {
	tb.Helper()

	if !got {
		tb.Error("got: false; want: true")
	}

	return got
}

// False asserts that got is false.
func False(tb testing.TB, got bool) bool {
	tb.Helper()

	if got {
		tb.Error("got: true; want: false")
	}

	return !got
}

// Nil asserts that got is nil.
func Nil(tb testing.TB, got any) bool {
	tb.Helper()

	if !isNil(got) {
		tb.Errorf("got: %#v; want: nil", got)

		return false
	}

	return true
}

// NotNil asserts that got is not nil.
func NotNil(tb testing.TB, got any) bool {
	tb.Helper()

	if isNil(got) {
		tb.Error("got: nil; want: not nil")

		return false
	}

	return true
}

// Contains asserts that got string contains all of want.
func Contains(tb testing.TB, got string, want ...string) bool {
	tb.Helper()

	res := true

	for _, w := range want {
		if !strings.Contains(got, w) {
			tb.Errorf("%q not found in: %q", w, got)

			res = false
		}
	}

	return res
}

// NotContains asserts that got string contains none of want.
func NotContains(tb testing.TB, got string, want ...string) bool {
	tb.Helper()

	res := true

	for _, w := range want {
		if strings.Contains(got, w) {
			tb.Errorf("%q unexpectedly found in: %q", w, got)

			res = false
		}
	}

	return res
}

type equaler[T any] interface {
	Equal(other T) bool
}

func areEqual[T any](val1, val2 T) bool {
	if isNil(val1) && isNil(val2) {
		return true
	}

	if eq, ok := any(val1).(equaler[T]); ok {
		return eq.Equal(val2)
	}

	if aBytes, ok := any(val1).([]byte); ok {
		if bBytes, ok := any(val2).([]byte); ok {
			return bytes.Equal(aBytes, bBytes)
		}
	}

	return reflect.DeepEqual(val1, val2)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Chan,
		reflect.Func,
		reflect.Interface,
		reflect.Map,
		reflect.Pointer,
		reflect.Slice,
		reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

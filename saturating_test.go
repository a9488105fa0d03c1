package timespan_test

import (
	"math"
	"testing"

	"timespan.org"
)

func TestSaturatingAdd(t *testing.T) {
	cases := []struct {
		A, B, Want timespan.Duration
	}{
		{timespan.Seconds(5), timespan.Seconds(5), timespan.Seconds(10)},
		{timespan.Milliseconds(-600), timespan.Milliseconds(-600), timespan.Milliseconds(-1200)},
		{timespan.Max, timespan.Nanoseconds(1), timespan.Max},
		{timespan.Max, timespan.Max, timespan.Max},
		{timespan.Min, timespan.Nanoseconds(-1), timespan.Min},
		{timespan.Min, timespan.Min, timespan.Min},
		{timespan.Max, timespan.Min, timespan.Seconds(-1)},
	}

	for i, c := range cases {
		got := c.A.SaturatingAdd(c.B)
		checkNormalized(t, got)
		if got != c.Want {
			t.Errorf("case %d: SaturatingAdd: got %+v, want %+v", i, got, c.Want)
		}
	}
}

func TestSaturatingSub(t *testing.T) {
	cases := []struct {
		A, B, Want timespan.Duration
	}{
		{timespan.Seconds(5), timespan.Seconds(3), timespan.Seconds(2)},
		{timespan.Milliseconds(200), timespan.Milliseconds(700), timespan.Milliseconds(-500)},
		{timespan.Min, timespan.Nanoseconds(1), timespan.Min},
		{timespan.Min, timespan.Max, timespan.Min},
		{timespan.Max, timespan.Nanoseconds(-1), timespan.Max},
		{timespan.Max, timespan.Min, timespan.Max},
		{timespan.Zero, timespan.Min, timespan.Max},
	}

	for i, c := range cases {
		got := c.A.SaturatingSub(c.B)
		checkNormalized(t, got)
		if got != c.Want {
			t.Errorf("case %d: SaturatingSub: got %+v, want %+v", i, got, c.Want)
		}
	}
}

func TestSaturatingMul(t *testing.T) {
	cases := []struct {
		A    timespan.Duration
		B    int32
		Want timespan.Duration
	}{
		{timespan.Seconds(5), 3, timespan.Seconds(15)},
		{timespan.Milliseconds(1500), -2, timespan.Seconds(-3)},
		{timespan.Seconds(5), 0, timespan.Zero},
		// The clamp direction follows the sign of the product.
		{timespan.Max, 2, timespan.Max},
		{timespan.Max, -2, timespan.Min},
		{timespan.Min, 2, timespan.Min},
		{timespan.Min, -2, timespan.Max},
		{timespan.Min, -1, timespan.Max},
	}

	for i, c := range cases {
		got := c.A.SaturatingMul(c.B)
		checkNormalized(t, got)
		if got != c.Want {
			t.Errorf("case %d: SaturatingMul(%d): got %+v, want %+v", i, c.B, got, c.Want)
		}
	}
}

func TestSaturatingDiv(t *testing.T) {
	cases := []struct {
		A    timespan.Duration
		B    int32
		Want timespan.Duration
	}{
		{timespan.Seconds(10), 4, timespan.Milliseconds(2500)},
		{timespan.Seconds(10), -4, timespan.Milliseconds(-2500)},
		{timespan.Min, -1, timespan.Max},
		{timespan.Min, 1, timespan.Min},
	}

	for i, c := range cases {
		got := c.A.SaturatingDiv(c.B)
		checkNormalized(t, got)
		if got != c.Want {
			t.Errorf("case %d: SaturatingDiv(%d): got %+v, want %+v", i, c.B, got, c.Want)
		}
	}
}

func TestSaturatingDivByZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SaturatingDiv(0): want panic, got none")
		}
	}()
	timespan.Seconds(1).SaturatingDiv(0)
}

func TestPanickingOperators(t *testing.T) {
	if got := timespan.Seconds(2).Add(timespan.Seconds(3)); got != timespan.Seconds(5) {
		t.Errorf("Add: got %+v, want 5s", got)
	}
	if got := timespan.Seconds(2).Sub(timespan.Seconds(3)); got != timespan.Seconds(-1) {
		t.Errorf("Sub: got %+v, want -1s", got)
	}
	if got := timespan.Seconds(2).Mul(-3); got != timespan.Seconds(-6) {
		t.Errorf("Mul: got %+v, want -6s", got)
	}
	if got := timespan.Seconds(-7).Div(2); got != timespan.Milliseconds(-3500) {
		t.Errorf("Div: got %+v, want -3.5s", got)
	}

	panics := []struct {
		Name string
		Call func()
	}{
		{"Add overflow", func() { timespan.Max.Add(timespan.Nanoseconds(1)) }},
		{"Sub overflow", func() { timespan.Min.Sub(timespan.Nanoseconds(1)) }},
		{"Mul overflow", func() { timespan.Max.Mul(2) }},
		{"Div by zero", func() { timespan.Second.Div(0) }},
		{"Div overflow", func() { timespan.Min.Div(-1) }},
		{"Neg overflow", func() { timespan.Min.Neg() }},
	}
	for _, c := range panics {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: want panic, got none", c.Name)
				}
			}()
			c.Call()
		}()
	}
}

func TestDivDuration(t *testing.T) {
	cases := []struct {
		A, B timespan.Duration
		Want float64
	}{
		{timespan.Seconds(10), timespan.Seconds(4), 2.5},
		{timespan.Seconds(-10), timespan.Seconds(4), -2.5},
		{timespan.Milliseconds(500), timespan.Seconds(2), 0.25},
	}

	for i, c := range cases {
		if got := c.A.DivDuration(c.B); got != c.Want {
			t.Errorf("case %d: DivDuration: got %v, want %v", i, got, c.Want)
		}
	}
}

func TestMulDivFloat(t *testing.T) {
	if got := timespan.Seconds(10).MulFloat64(0.25); got != timespan.Milliseconds(2500) {
		t.Errorf("MulFloat64: got %+v, want 2.5s", got)
	}
	if got := timespan.Seconds(10).DivFloat64(-4); got != timespan.Milliseconds(-2500) {
		t.Errorf("DivFloat64: got %+v, want -2.5s", got)
	}
	if got := timespan.Seconds(10).MulFloat32(0.5); got != timespan.Seconds(5) {
		t.Errorf("MulFloat32: got %+v, want 5s", got)
	}
	if got := timespan.Seconds(10).DivFloat32(4); got != timespan.Milliseconds(2500) {
		t.Errorf("DivFloat32: got %+v, want 2.5s", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MulFloat64(Inf): want panic, got none")
		}
	}()
	timespan.Seconds(1).MulFloat64(math.Inf(1))
}

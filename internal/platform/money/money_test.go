package money

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestToCents(t *testing.T) {
	cases := map[float64]int64{
		0:      0,
		0.01:   1,
		19.99:  1999,
		10:     1000,
		0.005:  1,
		123.45: 12345,
	}
	for in, want := range cases {
		got, err := ToCents(in)
		if err != nil || got != want {
			t.Fatalf("ToCents(%v) = %d,%v want %d", in, got, err, want)
		}
	}

	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := ToCents(bad); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ToCents(%v): expected ErrInvalidAmount, got %v", bad, err)
		}
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var body struct {
		Price *Amount `json:"price"`
	}

	if err := json.Unmarshal([]byte(`{"price": 12.5}`), &body); err != nil || body.Price == nil || *body.Price != 12.5 {
		t.Fatalf("number: got %v err=%v", body.Price, err)
	}

	body.Price = nil
	if err := json.Unmarshal([]byte(`{"price": " 7.25 "}`), &body); err != nil || body.Price == nil || *body.Price != 7.25 {
		t.Fatalf("string: got %v err=%v", body.Price, err)
	}

	body.Price = nil
	if err := json.Unmarshal([]byte(`{}`), &body); err != nil || body.Price != nil {
		t.Fatalf("missing: expected nil price, got %v err=%v", body.Price, err)
	}

	if err := json.Unmarshal([]byte(`{"price": "abc"}`), &body); err == nil {
		t.Fatalf("expected error for non numeric string")
	}
}

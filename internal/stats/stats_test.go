package stats

import (
	"math"
	"testing"
)

func TestQuantile(t *testing.T) {
	values := []float64{40, 10, 30, 20}

	tests := []struct {
		q    float64
		want float64
	}{
		{0, 10},
		{0.5, 25},
		{0.9, 37},
		{1, 40},
		{2, 40},
		{-1, 10},
	}
	for _, tt := range tests {
		if got := Quantile(values, tt.q); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Quantile(%v) = %v, want %v", tt.q, got, tt.want)
		}
	}

	if values[0] != 40 {
		t.Error("Quantile sorted its input in place")
	}
	if got := Percentile(values, 50); got != 25 {
		t.Errorf("Percentile(50) = %v", got)
	}
	if got := Quantile(nil, 0.5); got != 0 {
		t.Errorf("Quantile(nil) = %v", got)
	}
}

func TestAggregates(t *testing.T) {
	values := []float64{0, 3, -1, 6}

	if got := Sum(values); got != 8 {
		t.Errorf("Sum = %v", got)
	}
	if got := Mean(values); got != 2 {
		t.Errorf("Mean = %v", got)
	}
	if got := Max(values); got != 6 {
		t.Errorf("Max = %v", got)
	}
	if got := Positive(values); len(got) != 2 || got[0] != 3 || got[1] != 6 {
		t.Errorf("Positive = %v", got)
	}
	if Max(nil) != 0 || Mean(nil) != 0 {
		t.Error("empty input should give 0")
	}
}

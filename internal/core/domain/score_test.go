package domain

import "testing"

func TestAverageOf(t *testing.T) {
	cases := []struct {
		eq, ex, tu int
		want       int
	}{
		{600, 600, 600, 600},
		{650, 655, 645, 650},
		{700, 701, 701, 701}, // 700.66 rounds up
		{700, 700, 701, 700}, // 700.33 rounds down
	}
	for _, tc := range cases {
		if got := AverageOf(tc.eq, tc.ex, tc.tu); got != tc.want {
			t.Errorf("AverageOf(%d, %d, %d) = %d, want %d", tc.eq, tc.ex, tc.tu, got, tc.want)
		}
	}
}

func TestDeltaOf(t *testing.T) {
	initial := &CreditScore{Average: 620}
	current := &CreditScore{Average: 665}

	d := DeltaOf(initial, current)
	if d.Points != 45 {
		t.Fatalf("expected 45 points, got %d", d.Points)
	}
	if d.Display() != "+45 points" {
		t.Fatalf("unexpected display: %q", d.Display())
	}

	down := DeltaOf(current, initial)
	if down.Points != -45 || down.Display() != "-45 points" {
		t.Fatalf("unexpected negative delta: %d %q", down.Points, down.Display())
	}
}

func TestDeltaOf_NoHistory(t *testing.T) {
	d := DeltaOf(nil, nil)
	if d.Points != 0 {
		t.Fatalf("expected 0 points, got %d", d.Points)
	}
	if d.Display() != "No change" {
		t.Fatalf("unexpected display: %q", d.Display())
	}

	single := &CreditScore{Average: 640}
	if got := DeltaOf(nil, single); got.Points != 0 || got.Display() != "No change" {
		t.Fatalf("single snapshot should show no change, got %d %q", got.Points, got.Display())
	}
}

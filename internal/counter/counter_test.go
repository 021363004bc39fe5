package counter

import (
	"testing"
	"time"
)

func TestEaseEndpoints(t *testing.T) {
	if Ease(0) != 0 {
		t.Fatalf("expected ease(0)=0, got %v", Ease(0))
	}
	if Ease(1) != 1 {
		t.Fatalf("expected ease(1)=1, got %v", Ease(1))
	}
	if got := Ease(0.5); got != 0.875 {
		t.Fatalf("expected ease(0.5)=0.875, got %v", got)
	}
}

func TestSetAnimatesOnce(t *testing.T) {
	s := NewSet(Defaults(), func() float64 { return 0 })
	start := time.Unix(0, 0)
	for _, v := range s.Values(start) {
		if v.Value != 0 {
			t.Fatalf("expected zero before start, got %d for %s", v.Value, v.ID)
		}
	}
	if !s.Start(start) {
		t.Fatalf("expected first start to begin animation")
	}
	if s.Start(start.Add(time.Second)) {
		t.Fatalf("expected second start to be ignored")
	}

	mid := s.Values(start.Add(450 * time.Millisecond))
	if mid[2].Value != 1050 {
		t.Fatalf("expected 1200*0.875=1050 at midpoint, got %d", mid[2].Value)
	}
	if mid[2].Text != "1,050" {
		t.Fatalf("expected comma formatting, got %q", mid[2].Text)
	}
	if s.Done(start.Add(899 * time.Millisecond)) {
		t.Fatalf("expected animation still running")
	}
	end := s.Values(start.Add(2 * time.Second))
	if end[0].Value != 24 || end[1].Value != 48 || end[2].Text != "1,200" {
		t.Fatalf("unexpected final values %#v", end)
	}
	if !s.Done(start.Add(900 * time.Millisecond)) {
		t.Fatalf("expected animation done at duration")
	}
}

func TestSetJitterExtendsDuration(t *testing.T) {
	s := NewSet(Defaults()[:1], func() float64 { return 0.5 })
	start := time.Unix(0, 0)
	s.Start(start)
	if s.Done(start.Add(1200 * time.Millisecond)) {
		t.Fatalf("expected 1250ms duration with half jitter")
	}
	if !s.Done(start.Add(1250 * time.Millisecond)) {
		t.Fatalf("expected done at 1250ms")
	}
}

package game

import "testing"

func TestTimelineAdvancesOnExpiry(t *testing.T) {
	tl := NewModeTimeline([]ModeEntry{
		{ModeScatter, 1.0},
		{ModeChase, 2.0},
		{ModeScatter, -1},
	})

	if tl.Current() != ModeScatter || tl.Index() != 0 {
		t.Fatalf("fresh timeline at %s entry %d, want scatter entry 0", tl.Current(), tl.Index())
	}
	if tl.Tick(0.5) {
		t.Error("Tick reported a change at 0.5s into a 1s entry")
	}
	if !tl.Tick(0.6) {
		t.Error("Tick did not report the scatter to chase change")
	}
	if tl.Current() != ModeChase || tl.Index() != 1 {
		t.Fatalf("after expiry: %s entry %d, want chase entry 1", tl.Current(), tl.Index())
	}
	if tl.Remaining() != 2.0 {
		t.Errorf("Remaining = %v, want fresh entry duration 2.0", tl.Remaining())
	}
}

func TestTimelineInfiniteEntryNeverAdvances(t *testing.T) {
	tl := NewModeTimeline([]ModeEntry{
		{ModeScatter, 0.1},
		{ModeChase, -1},
	})
	tl.Tick(0.2)
	if tl.Current() != ModeChase {
		t.Fatalf("mode = %s, want chase", tl.Current())
	}

	for i := 0; i < 10000; i++ {
		if tl.Tick(1.0) {
			t.Fatal("infinite entry reported a mode change")
		}
	}
	if tl.Index() != 1 || tl.Current() != ModeChase {
		t.Errorf("infinite entry moved: %s entry %d", tl.Current(), tl.Index())
	}
	if tl.Remaining() >= 0 {
		t.Errorf("Remaining = %v, want negative sentinel", tl.Remaining())
	}
}

func TestTimelineFreezesWithoutInfiniteTail(t *testing.T) {
	tl := NewModeTimeline([]ModeEntry{{ModeScatter, 0.1}})
	for i := 0; i < 100; i++ {
		if tl.Tick(1.0) {
			t.Fatal("single-entry timeline reported a change")
		}
	}
	if tl.Index() != 0 || tl.Current() != ModeScatter {
		t.Errorf("exhausted timeline moved: %s entry %d", tl.Current(), tl.Index())
	}
}

func TestTimelineIndexMonotonic(t *testing.T) {
	tl := NewModeTimeline(modeTimelineFor(3))
	prev := tl.Index()
	for i := 0; i < 60*120; i++ {
		tl.Tick(1.0 / 60.0)
		if tl.Index() < prev {
			t.Fatalf("index went backwards: %d after %d", tl.Index(), prev)
		}
		prev = tl.Index()
	}
	if tl.Current() != ModeChase {
		t.Errorf("after two minutes mode = %s, want permanent chase", tl.Current())
	}
}

func TestFrightenedDurationTapers(t *testing.T) {
	cases := []struct {
		level int
		want  float64
	}{
		{1, 6.0},
		{2, 5.0}, {5, 5.0},
		{6, 4.0}, {9, 4.0},
		{10, 3.0}, {13, 3.0},
		{14, 2.0}, {20, 2.0},
		{21, 1.0}, {25, 1.0},
		{26, 0.5}, {100, 0.5}, {256, 0.5},
	}
	for _, c := range cases {
		if got := frightenedDuration(c.level); got != c.want {
			t.Errorf("frightenedDuration(%d) = %v, want %v", c.level, got, c.want)
		}
	}

	// Monotonically non-increasing across the whole level range.
	prev := frightenedDuration(1)
	for level := 2; level <= 300; level++ {
		d := frightenedDuration(level)
		if d > prev {
			t.Fatalf("duration grew from %v to %v at level %d", prev, d, level)
		}
		prev = d
	}
}

func TestFrightenedTimerLifecycle(t *testing.T) {
	var ft FrightenedTimer

	if ft.Active() {
		t.Fatal("zero-value timer is active")
	}
	if ft.Tick(1.0) {
		t.Fatal("inactive timer reported expiry")
	}

	ft.Arm(1.0)
	if !ft.Active() || ft.Remaining() != 1.0 {
		t.Fatalf("armed timer: active=%v remaining=%v", ft.Active(), ft.Remaining())
	}
	if ft.Tick(0.5) {
		t.Error("expired halfway through the window")
	}
	if !ft.Tick(0.6) {
		t.Error("no expiry signal on the closing tick")
	}
	if ft.Active() || ft.Remaining() != 0 {
		t.Errorf("after expiry: active=%v remaining=%v, want inactive at 0", ft.Active(), ft.Remaining())
	}
	if ft.Tick(1.0) {
		t.Error("expiry signalled twice")
	}

	// Re-arming reopens the window.
	ft.Arm(2.0)
	if !ft.Active() || ft.Remaining() != 2.0 {
		t.Errorf("re-armed timer: active=%v remaining=%v", ft.Active(), ft.Remaining())
	}
	ft.Reset()
	if ft.Active() {
		t.Error("Reset left the timer active")
	}
}

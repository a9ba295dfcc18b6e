package pet

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

func TestNew_StartsFreshAndIdle(t *testing.T) {
	now := time.Now()
	p := New("p-1", "a-1", "Quacky", now)

	if p.Health != 100 || p.Hunger != 0 || p.Happiness != 100 || p.Cleanliness != 100 {
		t.Fatalf("unexpected fresh vitals: %+v", p)
	}
	if p.State != StateIdle || !p.Alive || p.Sick {
		t.Fatalf("expected idle living pet, got %+v", p)
	}
}

func TestStatusMessage_PriorityOrder(t *testing.T) {
	now := time.Now()

	dead := New("p", "a", "Q", now)
	dead.MarkDead()
	dead.Sick = true
	if got := dead.StatusMessage(); got != "RIP" {
		t.Fatalf("expected death to win priority, got %q", got)
	}

	sick := New("p", "a", "Q", now)
	sick.Sick = true
	sick.SetHunger(100)
	if got := sick.StatusMessage(); got != "Sick" {
		t.Fatalf("expected sickness before hunger, got %q", got)
	}

	hungry := New("p", "a", "Q", now)
	hungry.SetHunger(85)
	hungry.SetHappiness(10)
	if got := hungry.StatusMessage(); got != "Very Hungry" {
		t.Fatalf("expected hunger before sadness, got %q", got)
	}

	happy := New("p", "a", "Q", now)
	happy.SetHappiness(90)
	if got := happy.StatusMessage(); got != "Very Happy" {
		t.Fatalf("expected Very Happy, got %q", got)
	}

	fine := New("p", "a", "Q", now)
	fine.SetHappiness(50)
	if got := fine.StatusMessage(); got != "Doing Well" {
		t.Fatalf("expected Doing Well, got %q", got)
	}
}

// Vitals stay inside [0,100] no matter what sequence of decay and actions a
// pet lives through.
func TestVitalsStayBounded(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		svc := CareService{}
		now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		p := New("p-1", "a-1", "Quacky", now)

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			now = now.Add(time.Duration(rapid.IntRange(0, 180).Draw(rt, "advance")) * time.Minute)
			switch rapid.IntRange(0, 6).Draw(rt, "op") {
			case 0:
				p, _ = svc.Tick(p, now, func() float64 { return rapid.Float64Range(0, 1).Draw(rt, "roll") })
			case 1:
				p, _ = svc.Feed(p, testFood, now)
			case 2:
				p, _ = svc.Clean(p, now)
			case 3:
				p, _ = svc.Play(p, now)
			case 4:
				p, _ = svc.Sleep(p, now)
			case 5:
				p, _ = svc.Wake(p, now)
			case 6:
				p, _, _ = svc.ApplyGameResult(p, rapid.IntRange(0, 100).Draw(rt, "score"), now)
			}

			for name, v := range map[string]int{
				"health":      p.Health,
				"hunger":      p.Hunger,
				"happiness":   p.Happiness,
				"cleanliness": p.Cleanliness,
			} {
				if v < 0 || v > 100 {
					rt.Fatalf("%s out of bounds: %d (pet %+v)", name, v, p)
				}
			}
			if !p.Alive && p.State != StateDead {
				rt.Fatalf("dead pet must be in DEAD state: %+v", p)
			}
		}
	})
}

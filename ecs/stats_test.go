package ecs

import (
	"testing"
	"time"
)

type statsPos struct{ X, Y float32 }
type statsHp struct{ Current int }
type statsClock struct{ Elapsed float64 }

func TestStorageStats(t *testing.T) {
	registry := NewComponentRegistry()
	RegisterComponent[statsPos](registry)
	RegisterComponent[statsHp](registry)

	storage := NewStorage(registry)

	stats := storage.CollectStats()
	if stats.ArchetypeCount != 0 || stats.TotalEntityCount != 0 || stats.SingletonCount != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}

	a := storage.Spawn(statsPos{}, statsHp{Current: 3})
	storage.Spawn(statsPos{}, statsHp{Current: 4})
	storage.Spawn(statsPos{X: 1})
	storage.Delete(a)

	NewSingleton[statsClock](storage)

	stats = storage.CollectStats()

	if stats.ArchetypeCount != 2 {
		t.Errorf("expected 2 archetypes, got %d", stats.ArchetypeCount)
	}
	if stats.TotalEntityCount != 2 {
		t.Errorf("expected 2 live entities, got %d", stats.TotalEntityCount)
	}
	if stats.SingletonCount != 1 || len(stats.SingletonTypes) != 1 {
		t.Errorf("expected 1 singleton, got %d (%v)", stats.SingletonCount, stats.SingletonTypes)
	}

	// breakdown follows archetype creation order
	if len(stats.ArchetypeBreakdown) != 2 {
		t.Fatalf("expected 2 archetype breakdown entries, got %d", len(stats.ArchetypeBreakdown))
	}
	if got := stats.ArchetypeBreakdown[0]; got.EntityCount != 1 || len(got.ComponentTypes) != 2 {
		t.Errorf("unexpected first archetype: %+v", got)
	}
	if got := stats.ArchetypeBreakdown[1]; got.EntityCount != 1 || len(got.ComponentTypes) != 1 {
		t.Errorf("unexpected second archetype: %+v", got)
	}
}

type sleepySystem struct {
	executeCount int
	sleepDur     time.Duration
}

func (s *sleepySystem) Execute(frame *UpdateFrame) {
	s.executeCount++
	time.Sleep(s.sleepDur)
}

func TestSchedulerStats(t *testing.T) {
	scheduler := NewScheduler(NewStorage(NewComponentRegistry()))

	stats := scheduler.GetStats()
	if stats.SystemCount != 0 || stats.TotalExecutions != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}

	fast := &sleepySystem{sleepDur: time.Millisecond}
	slow := &sleepySystem{sleepDur: 2 * time.Millisecond}
	scheduler.Register(fast)
	scheduler.Register(slow)

	for i := 0; i < 3; i++ {
		scheduler.Once(0.016)
	}

	stats = scheduler.GetStats()
	if stats.SystemCount != 2 {
		t.Errorf("expected 2 systems, got %d", stats.SystemCount)
	}
	if stats.TotalExecutions != 6 {
		t.Errorf("expected 6 total executions, got %d", stats.TotalExecutions)
	}

	for _, st := range stats.Systems {
		if st.Name != "sleepySystem" {
			t.Errorf("expected system name 'sleepySystem', got '%s'", st.Name)
		}
		if st.ExecutionCount != 3 {
			t.Errorf("expected 3 executions, got %d", st.ExecutionCount)
		}
		if st.MinDuration == 0 || st.LastDuration == 0 {
			t.Errorf("expected non-zero durations, got %+v", st)
		}
		if st.MinDuration > st.AvgDuration || st.AvgDuration > st.MaxDuration {
			t.Errorf("expected min <= avg <= max, got %v %v %v", st.MinDuration, st.AvgDuration, st.MaxDuration)
		}
	}

	if stats.Systems[1].MinDuration < 2*time.Millisecond {
		t.Errorf("slow system min duration %v shorter than its sleep", stats.Systems[1].MinDuration)
	}
	if fast.executeCount != 3 || slow.executeCount != 3 {
		t.Errorf("expected 3 executions each, got %d and %d", fast.executeCount, slow.executeCount)
	}
}

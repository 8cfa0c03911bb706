package ecs

import (
	"context"
	"math"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type storageBinder interface {
	Init(storage *Storage)
}

type frameQuery interface {
	storageBinder
	Execute()
}

// Scheduler runs systems in registration order. Registration order is the frame's
// stage order; there is no dependency solving.
type Scheduler struct {
	storage  *Storage
	systems  []System
	stats    []SystemStats
	queries  []frameQuery
	commands *Commands
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage:  storage,
		commands: newCommands(),
	}
}

// Register appends system to the frame and binds its Query and Singleton fields.
func (s *Scheduler) Register(system System) {
	s.bindFields(system)
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Pointer {
		systemType = systemType.Elem()
	}
	s.stats = append(s.stats, SystemStats{
		Name:        systemType.Name(),
		MinDuration: time.Duration(math.MaxInt64),
	})
}

func (s *Scheduler) bindFields(system System) {
	value := reflect.ValueOf(system)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return
	}
	value = value.Elem()

	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		switch binder := field.Addr().Interface().(type) {
		case frameQuery:
			binder.Init(s.storage)
			s.queries = append(s.queries, binder)
		case storageBinder:
			binder.Init(s.storage)
		}
	}
}

// Once runs one frame: refresh queries, execute every system, flush commands.
func (s *Scheduler) Once(dt float64) {
	for _, q := range s.queries {
		q.Execute()
	}

	frame := &UpdateFrame{
		DeltaTime: dt,
		Commands:  s.commands,
		Storage:   s.storage,
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.record(i, time.Since(start))
	}

	s.commands.Flush(s.storage)
}

func (s *Scheduler) record(i int, d time.Duration) {
	st := &s.stats[i]
	st.ExecutionCount++
	st.LastDuration = d
	st.TotalDuration += d
	st.MinDuration = min(st.MinDuration, d)
	st.MaxDuration = max(st.MaxDuration, d)
}

// Run executes frames at the given interval until ctx is cancelled. Each frame's delta
// time is the wall-clock time since the previous frame.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.stats)),
	}

	for i, st := range s.stats {
		if st.ExecutionCount > 0 {
			st.AvgDuration = st.TotalDuration / time.Duration(st.ExecutionCount)
		}
		stats.Systems[i] = st
		stats.TotalExecutions += st.ExecutionCount
	}
	return stats
}

package ecs

import (
	"context"
	"math"
	"reflect"
	"strings"
	"time"
)

// DefaultFixedTimestep is the fixed simulation step in seconds.
const DefaultFixedTimestep = 0.017

// DefaultMaxFixedSteps caps how many fixed steps a single frame may run,
// so a stalled frame cannot trigger an unbounded catch-up burst.
const DefaultMaxFixedSteps = 8

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          uint64
	FixedSteps      uint64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Stage          Stage
	ExecutionCount int64
	SkippedCount   int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	stage          Stage
	executionCount int64
	skippedCount   int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type registeredSystem struct {
	system     System
	stage      Stage
	conditions []Condition
	stats      *systemStatsInternal
}

// SystemOption configures a system at registration.
type SystemOption func(*registeredSystem)

// InStage places the system in the given stage. Systems default to Update.
func InStage(stage Stage) SystemOption {
	return func(rs *registeredSystem) {
		rs.stage = stage
	}
}

// RunIf adds a run condition. Conditions are evaluated in registration order
// and evaluation stops at the first false one, so stateful conditions such as
// OnTimer only advance while the conditions before them hold.
func RunIf(cond Condition) SystemOption {
	return func(rs *registeredSystem) {
		rs.conditions = append(rs.conditions, cond)
	}
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithFixedTimestep sets the FixedUpdate step in seconds.
func WithFixedTimestep(step float64) SchedulerOption {
	return func(s *Scheduler) {
		if step <= 0 {
			panic("fixed timestep must be positive")
		}
		s.fixedStep = step
	}
}

// WithMaxFixedSteps caps the fixed steps run per frame.
func WithMaxFixedSteps(n int) SchedulerOption {
	return func(s *Scheduler) {
		if n <= 0 {
			panic("max fixed steps must be positive")
		}
		s.maxFixedSteps = n
	}
}

// Scheduler manages and executes systems in order. Within a stage, systems
// run in registration order; each frame runs PreUpdate, then FixedUpdate as
// many times as the accumulated time allows, then Update.
type Scheduler struct {
	resources     *Resources
	stages        [stageCount][]*registeredSystem
	systemStats   []*systemStatsInternal
	fixedStep     float64
	maxFixedSteps int
	accumulator   float64
	started       bool
	clock         *Singleton[Time]
}

// NewScheduler creates a new scheduler for the given resources.
func NewScheduler(resources *Resources, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		resources:     resources,
		fixedStep:     DefaultFixedTimestep,
		maxFixedSteps: DefaultMaxFixedSteps,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.clock = NewSingleton[Time](resources, Time{FixedDelta: s.fixedStep})
	return s
}

// Resources returns the resources the scheduler runs against.
func (s *Scheduler) Resources() *Resources {
	return s.resources
}

// FixedTimestep returns the FixedUpdate step in seconds.
func (s *Scheduler) FixedTimestep() float64 {
	return s.fixedStep
}

// Register adds a system to the scheduler and initializes its Singleton fields.
func (s *Scheduler) Register(system System, opts ...SystemOption) {
	s.initializeSingletons(system)

	rs := &registeredSystem{
		system: system,
		stage:  Update,
	}
	for _, opt := range opts {
		opt(rs)
	}
	if rs.stage < 0 || rs.stage >= stageCount {
		panic("invalid stage for system registration")
	}

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	rs.stats = &systemStatsInternal{
		name:        systemType.Name(),
		stage:       rs.stage,
		minDuration: time.Duration(1<<63 - 1),
	}

	s.stages[rs.stage] = append(s.stages[rs.stage], rs)
	s.systemStats = append(s.systemStats, rs.stats)
}

func (s *Scheduler) initializeSingletons(system System) {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return
	}

	systemType := systemValue.Type()

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		fieldType := systemType.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() != reflect.Struct {
			continue
		}

		typeName := field.Type().Name()

		if strings.HasPrefix(typeName, "Singleton[") {
			initMethod := field.Addr().MethodByName("Init")
			if !initMethod.IsValid() {
				panic("Init method not found on Singleton field: " + fieldType.Name)
			}

			initMethod.Call([]reflect.Value{
				reflect.ValueOf(s.resources),
			})
		}
	}
}

// Once advances the world by one frame of dt seconds.
// Startup systems run before the first frame only.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.resources)

	if !s.started {
		s.started = true
		s.runStage(Startup, frame)
	}

	clock := s.clock.Get()
	clock.Frame++
	clock.Delta = dt
	clock.Elapsed += dt
	clock.FixedDelta = s.fixedStep

	s.runStage(PreUpdate, frame)

	s.accumulator += dt
	steps := 0
	for s.accumulator >= s.fixedStep && steps < s.maxFixedSteps {
		frame.DeltaTime = s.fixedStep
		s.runStage(FixedUpdate, frame)
		s.accumulator -= s.fixedStep
		clock.FixedSteps++
		clock.FixedElapsed += s.fixedStep
		steps++
	}
	if s.accumulator >= s.fixedStep {
		// Drop the backlog we refused to simulate.
		s.accumulator = math.Mod(s.accumulator, s.fixedStep)
	}
	clock.Overstep = s.accumulator

	frame.DeltaTime = dt
	s.runStage(Update, frame)
}

func (s *Scheduler) runStage(stage Stage, frame *UpdateFrame) {
	frame.Stage = stage

	for _, rs := range s.stages[stage] {
		if !rs.shouldRun(frame) {
			rs.stats.skippedCount++
			continue
		}

		start := time.Now()
		rs.system.Execute(frame)
		duration := time.Since(start)

		stats := rs.stats
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Commands.Flush(s.resources)
}

func (rs *registeredSystem) shouldRun(frame *UpdateFrame) bool {
	for _, cond := range rs.conditions {
		if !cond(frame) {
			return false
		}
	}
	return true
}

// Run executes frames repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	clock := s.clock.Get()
	stats := &SchedulerStats{
		SystemCount: len(s.systemStats),
		Frames:      clock.Frame,
		FixedSteps:  clock.FixedSteps,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			Stage:          internal.stage,
			ExecutionCount: internal.executionCount,
			SkippedCount:   internal.skippedCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}

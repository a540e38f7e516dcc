// Package wall simulates the descending brick wall: a scroll accumulator
// whose speed creeps up each tick, and a row clock that emits a new
// symmetric row each time the wall has moved down by one unit.
package wall

// State is the simulator's per-tick mode.
type State int

const (
	Advancing State = iota
	Stopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Advancing:
		return "Advancing"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Config holds the wall's motion parameters.
type Config struct {
	Speed         float64 // Initial descent speed in rows per second
	MaxSpeed      float64 // Speed cap
	Growth        float64 // Per-tick speed multiplier
	BaseRowOffset float64 // Height at which new rows appear
}

// DefaultConfig returns the stock wall parameters.
func DefaultConfig() Config {
	return Config{
		Speed:         0.05,
		MaxSpeed:      0.3,
		Growth:        1.0001,
		BaseRowOffset: 14,
	}
}

// StepResult describes what one tick did.
type StepResult struct {
	State   State
	Advance float64 // Distance the wall moved this tick
	Rows    []Row   // Rows spawned this tick, usually zero or one
}

// Simulator advances the wall.
type Simulator struct {
	cfg    Config
	gen    *Generator
	state  State
	scroll float64
	interp float64
	speed  float64
}

// NewSimulator creates a simulator that spawns rows from gen.
func NewSimulator(cfg Config, gen *Generator) *Simulator {
	if cfg.Growth <= 0 {
		cfg.Growth = 1
	}
	return &Simulator{
		cfg:   cfg,
		gen:   gen,
		speed: min(cfg.Speed, cfg.MaxSpeed),
	}
}

// Step advances the wall by dt seconds. While stopped the wall holds still
// and its speed does not grow.
func (s *Simulator) Step(dt float64, stopped bool) StepResult {
	if stopped {
		s.state = Stopped
		return StepResult{State: Stopped}
	}
	s.state = Advancing

	s.speed = min(s.speed*s.cfg.Growth, s.cfg.MaxSpeed)

	advance := dt * s.speed
	if advance < 0 {
		advance = 0
	}
	s.scroll += advance
	s.interp += advance

	result := StepResult{State: Advancing, Advance: advance}
	// A single tick never crosses more than one row at playable speeds,
	// but a long frame can; keep the interpolator inside [0,1).
	for s.interp > 1 {
		excess := s.interp - 1
		s.interp = excess
		result.Rows = append(result.Rows, s.spawn(s.cfg.BaseRowOffset+excess))
	}
	return result
}

func (s *Simulator) spawn(y float64) Row {
	if s.gen == nil {
		return Row{Y: y}
	}
	return s.gen.Row(y)
}

// InitialWall builds the starting rows at fixed heights.
func (s *Simulator) InitialWall(top, bottom int) []Row {
	if s.gen == nil {
		return nil
	}
	return s.gen.InitialWall(top, bottom)
}

// State returns the mode of the last tick.
func (s *Simulator) State() State { return s.state }

// ScrollPosition returns the total distance the wall has descended.
func (s *Simulator) ScrollPosition() float64 { return s.scroll }

// RowInterpolator returns progress toward the next row, in [0,1).
func (s *Simulator) RowInterpolator() float64 { return s.interp }

// Speed returns the current descent speed.
func (s *Simulator) Speed() float64 { return s.speed }

// MaxSpeed returns the speed cap.
func (s *Simulator) MaxSpeed() float64 { return s.cfg.MaxSpeed }

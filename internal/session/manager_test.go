package session

import (
	"context"
	"math"
	"testing"

	"github.com/vovakirdan/steelwall/internal/sequence"
	"github.com/vovakirdan/steelwall/internal/spawn"
	"github.com/vovakirdan/steelwall/internal/timer"
	"github.com/vovakirdan/steelwall/internal/wall"
)

type recorder struct {
	NopListener
	released    int
	rows        []wall.Row
	wallSound   []bool
	transitions []State
}

func (r *recorder) BallReleased()           { r.released++ }
func (r *recorder) RowSpawned(row wall.Row) { r.rows = append(r.rows, row) }
func (r *recorder) WallSound(on bool)       { r.wallSound = append(r.wallSound, on) }
func (r *recorder) StateChanged(_, to State) {
	r.transitions = append(r.transitions, to)
}

type countingPersistence struct {
	stored int
	saves  int
}

func (p *countingPersistence) GetHighScore() int { return p.stored }
func (p *countingPersistence) SetHighScore(score int) {
	p.stored = score
	p.saves++
}

type sceneRecorder struct{ loaded []string }

func (s *sceneRecorder) LoadScene(name string) { s.loaded = append(s.loaded, name) }

type displayRecorder struct{ fade, volume float64 }

func (d *displayRecorder) SetScreenFade(level float64) { d.fade = level }
func (d *displayRecorder) SetVolume(level float64)     { d.volume = level }

type fixture struct {
	m       *Manager
	events  *recorder
	persist *countingPersistence
	scenes  *sceneRecorder
	display *displayRecorder
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	f := &fixture{
		events:  &recorder{},
		persist: &countingPersistence{},
		scenes:  &sceneRecorder{},
		display: &displayRecorder{},
	}
	f.m = New(cfg, Deps{
		Bricks:      spawn.MustTable([]int{1}),
		Source:      spawn.NewSource(7),
		Persistence: f.persist,
		Scenes:      f.scenes,
		Display:     f.display,
		Listener:    f.events,
	})
	return f
}

// playing returns a started session already past the get-ready sequence.
func playing(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t, DefaultConfig())
	f.m.Start(context.Background())
	for i := 0; i < 100 && f.m.State() == GetReady; i++ {
		f.m.Tick(0.5)
	}
	if f.m.State() != Playing {
		t.Fatalf("state = %v after start sequence, expected Playing", f.m.State())
	}
	return f
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{GetReady, "GetReady"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{GameOver, "GameOver"},
		{State(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, expected %q", tt.state, got, tt.want)
		}
	}
}

func TestStartSequence(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	f.persist.stored = 250
	f.m.Start(context.Background())

	if len(f.events.rows) != 9 {
		t.Fatalf("initial wall has %d rows, expected 9", len(f.events.rows))
	}
	if f.events.rows[0].Y != 14 || f.events.rows[8].Y != 6 {
		t.Errorf("initial wall spans %v..%v, expected 14..6", f.events.rows[0].Y, f.events.rows[8].Y)
	}
	if f.m.HighScore() != 250 {
		t.Errorf("high score = %d, expected the stored 250", f.m.HighScore())
	}
	if f.display.fade != 1 {
		t.Errorf("screen fade = %v at start, expected 1", f.display.fade)
	}

	for i := 0; i < 11; i++ {
		f.m.Tick(0.5)
	}
	if f.m.State() != GetReady {
		t.Fatalf("state = %v after 5.5s, expected GetReady", f.m.State())
	}
	if f.display.fade != 0 || f.display.volume != 1 {
		t.Errorf("fade/volume = %v/%v after scene fade, expected 0/1", f.display.fade, f.display.volume)
	}
	if a := f.m.Overlay().GetReady; math.Abs(a-0.25) > 1e-9 {
		t.Errorf("get-ready alpha = %v, expected 0.25", a)
	}

	f.m.Tick(0.5)
	if f.m.State() != Playing {
		t.Fatalf("state = %v after 6s, expected Playing", f.m.State())
	}
	if len(f.events.wallSound) == 0 || !f.events.wallSound[0] {
		t.Error("entering Playing should start the wall sound")
	}
}

func TestStartIsIdempotent(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	f.m.Start(context.Background())
	f.m.Start(context.Background())
	if len(f.events.rows) != 9 {
		t.Errorf("second Start rebuilt the wall: %d rows", len(f.events.rows))
	}
}

func TestStartCancelledBeforePlaying(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	f.m.Start(ctx)
	f.m.Tick(0.5)
	cancel()
	for i := 0; i < 20; i++ {
		f.m.Tick(0.5)
	}
	if f.m.State() != GetReady {
		t.Errorf("state = %v, cancelled start sequence should never reach Playing", f.m.State())
	}
}

func TestAddPoints(t *testing.T) {
	f := playing(t)
	f.m.AddPoints(10)
	if f.m.Score() != 10 {
		t.Fatalf("score = %d, expected 10", f.m.Score())
	}

	f.m.Pause()
	f.m.AddPoints(10)
	if f.m.Score() != 10 {
		t.Errorf("points added while paused: score = %d", f.m.Score())
	}

	f.m.Resume()
	f.m.AddPoints(5)
	if f.m.Score() != 15 {
		t.Errorf("score = %d after resume, expected 15", f.m.Score())
	}
}

func TestAddPointsBeforePlaying(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	f.m.Start(context.Background())
	f.m.AddPoints(100)
	if f.m.Score() != 0 {
		t.Errorf("points accepted during GetReady: %d", f.m.Score())
	}
}

func TestHighScoreDisplayNotPersistedUntilEnd(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	f.persist.stored = 100
	f.m.Start(context.Background())
	for f.m.State() == GetReady {
		f.m.Tick(0.5)
	}

	f.m.AddPoints(150)
	if f.m.HighScore() != 150 {
		t.Errorf("displayed high score = %d, expected 150", f.m.HighScore())
	}
	if f.persist.saves != 0 {
		t.Error("high score persisted before the game ended")
	}
}

func TestEndGameIsIdempotent(t *testing.T) {
	f := playing(t)
	f.m.AddPoints(300)

	f.m.EndGame(1)
	f.m.EndGame(1)

	if f.m.State() != GameOver {
		t.Fatalf("state = %v, expected GameOver", f.m.State())
	}
	if f.persist.saves != 1 || f.persist.stored != 300 {
		t.Errorf("saves=%d stored=%d, expected one save of 300", f.persist.saves, f.persist.stored)
	}

	gameOvers := 0
	for _, s := range f.events.transitions {
		if s == GameOver {
			gameOvers++
		}
	}
	if gameOvers != 1 {
		t.Errorf("GameOver entered %d times", gameOvers)
	}
}

func TestEndGameKeepsBetterStoredScore(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	f.persist.stored = 1000
	f.m.Start(context.Background())
	for f.m.State() == GetReady {
		f.m.Tick(0.5)
	}
	f.m.AddPoints(10)
	f.m.EndGame(0)

	if f.persist.saves != 0 {
		t.Error("lower score overwrote the stored high score")
	}
}

func TestEndGameFadeLoadsMenu(t *testing.T) {
	f := playing(t)
	f.m.EndGame(1)

	f.m.Tick(0.5)
	if a := f.m.Overlay().GameOver; math.Abs(a-0.5) > 1e-9 {
		t.Errorf("game-over alpha = %v, expected 0.5", a)
	}
	f.m.Tick(0.5)
	f.m.Tick(0.5)
	if len(f.scenes.loaded) != 0 {
		t.Fatal("menu loaded before the screen fade finished")
	}
	if math.Abs(f.display.fade-0.5) > 1e-9 {
		t.Errorf("screen fade = %v halfway, expected 0.5", f.display.fade)
	}
	f.m.Tick(0.5)
	if len(f.scenes.loaded) != 1 || f.scenes.loaded[0] != MenuScene {
		t.Errorf("loaded scenes = %v, expected [%s]", f.scenes.loaded, MenuScene)
	}
}

func TestEndGameDuringGetReady(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	f.m.Start(context.Background())
	f.m.Tick(0.5)

	f.m.EndGame(2)
	for i := 0; i < 40; i++ {
		f.m.Tick(0.5)
	}

	if f.m.State() != GameOver {
		t.Fatalf("state = %v, GameOver should be final", f.m.State())
	}
	if len(f.events.transitions) != 1 || f.events.transitions[0] != GameOver {
		t.Errorf("transitions = %v, expected [GameOver]", f.events.transitions)
	}
	for _, on := range f.events.wallSound {
		if on {
			t.Error("wall sound started after the game ended")
		}
	}
	if len(f.scenes.loaded) != 1 || f.scenes.loaded[0] != MenuScene {
		t.Errorf("loaded scenes = %v, expected [%s]", f.scenes.loaded, MenuScene)
	}
	if f.m.Overlay().GetReady != 0 {
		t.Errorf("get-ready alpha = %v after game over", f.m.Overlay().GetReady)
	}
}

func TestQuitLoadsMenuWithoutFade(t *testing.T) {
	f := playing(t)

	f.m.Quit()
	if f.m.State() != Playing {
		t.Fatal("Quit should only act while paused")
	}

	f.m.Pause()
	f.m.Quit()
	if f.m.State() != GameOver {
		t.Fatalf("state = %v, expected GameOver", f.m.State())
	}
	f.m.Tick(0.016)
	if len(f.scenes.loaded) != 1 {
		t.Errorf("loaded scenes = %v, expected the menu on the next frame", f.scenes.loaded)
	}
}

func TestBallExhaustionEndsGame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Balls = 1
	f := newFixture(t, cfg)
	f.m.Start(context.Background())
	for f.m.State() == GetReady {
		f.m.Tick(0.5)
	}

	if !f.m.ReleaseBall() {
		t.Fatal("ReleaseBall failed with a ball in the bank")
	}
	f.m.RegisterBall()
	f.m.Tick(0.016)
	if f.m.State() != Playing {
		t.Fatal("game ended with a ball still in play")
	}

	f.m.UnregisterBall()
	f.m.Tick(0.016)
	if f.m.State() != GameOver {
		t.Errorf("state = %v with no balls left, expected GameOver", f.m.State())
	}
}

func TestBallBank(t *testing.T) {
	f := playing(t)
	start := f.m.BallsInBank()

	f.m.AddBall(3)
	if f.m.BallsInBank() != start+3 {
		t.Errorf("bank = %d, expected %d", f.m.BallsInBank(), start+3)
	}

	f.m.RemoveBall(100)
	if f.m.BallsInBank() != 0 {
		t.Errorf("bank = %d after over-removal, expected 0", f.m.BallsInBank())
	}

	f.m.UnregisterBall()
	if f.m.BallsInPlay() != 0 {
		t.Errorf("balls in play went negative: %d", f.m.BallsInPlay())
	}
}

func TestReleaseBall(t *testing.T) {
	f := newFixture(t, DefaultConfig())
	f.m.Start(context.Background())
	if f.m.ReleaseBall() {
		t.Error("ball released during GetReady")
	}
	for f.m.State() == GetReady {
		f.m.Tick(0.5)
	}

	if !f.m.ReleaseBall() {
		t.Fatal("ReleaseBall failed while Playing")
	}
	if f.m.BallsInBank() != 5 || f.events.released != 1 {
		t.Errorf("bank=%d released=%d, expected 5 and 1", f.m.BallsInBank(), f.events.released)
	}

	f.m.RemoveBall(5)
	if f.m.ReleaseBall() {
		t.Error("ball released from an empty bank")
	}
	if f.events.released != 1 {
		t.Error("empty bank still signalled a release")
	}
}

func TestWallStopFreezesWall(t *testing.T) {
	f := playing(t)
	f.m.RegisterBall()

	f.m.Tick(0.1)
	moving := f.m.WallOffset()
	if moving <= 0 {
		t.Fatal("wall did not advance while Playing")
	}

	f.m.UpdateTimer(timer.WallStop, 0.25)
	f.m.Tick(0.1)
	f.m.Tick(0.1)
	if f.m.WallOffset() != moving {
		t.Errorf("wall moved from %v to %v while stopped", moving, f.m.WallOffset())
	}
	if last := f.events.wallSound[len(f.events.wallSound)-1]; last {
		t.Error("wall sound still on while stopped")
	}

	f.m.Tick(0.1)
	f.m.Tick(0.1)
	if f.m.WallOffset() <= moving {
		t.Error("wall did not resume after the stop timer ran out")
	}
	if got := f.m.GetTimer(timer.WallStop); got != 0 {
		t.Errorf("wall stop timer = %v, expected 0", got)
	}
}

func TestSharedTimers(t *testing.T) {
	f := playing(t)
	f.m.RegisterBall()

	if got := f.m.GetTimer(timer.SpeedBall); got != timer.Absent {
		t.Errorf("unregistered timer = %v, expected %v", got, timer.Absent)
	}
	f.m.UpdateTimer(timer.SpeedBall, 5)
	if got := f.m.GetTimer(timer.SpeedBall); got != timer.Absent {
		t.Error("updating an unregistered timer should be a no-op")
	}

	f.m.RegisterTimer(timer.SpeedBall)
	f.m.UpdateTimer(timer.SpeedBall, 1)
	f.m.RegisterTimer(timer.SpeedBall)
	if got := f.m.GetTimer(timer.SpeedBall); got != 1 {
		t.Errorf("re-registering reset the timer: %v", got)
	}

	f.m.Tick(0.25)
	if got := f.m.GetTimer(timer.SpeedBall); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("timer = %v after one tick, expected 0.75", got)
	}
}

func TestPauseFreezesTimers(t *testing.T) {
	f := playing(t)
	f.m.RegisterBall()
	f.m.RegisterTimer(timer.BigBall)
	f.m.UpdateTimer(timer.BigBall, 1)

	f.m.Pause()
	if f.display.fade != DefaultConfig().PauseFade {
		t.Errorf("pause fade = %v", f.display.fade)
	}
	offset := f.m.WallOffset()
	f.m.Tick(0.5)
	if f.m.GetTimer(timer.BigBall) != 1 || f.m.WallOffset() != offset {
		t.Error("paused session advanced")
	}

	f.m.Resume()
	if f.display.fade != 0 {
		t.Errorf("fade = %v after resume, expected 0", f.display.fade)
	}
	f.m.Tick(0.5)
	if f.m.GetTimer(timer.BigBall) != 0.5 {
		t.Errorf("timer = %v after resume, expected 0.5", f.m.GetTimer(timer.BigBall))
	}
}

func TestRowsSpawnWhileWallAdvances(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Wall.Speed = 0.5
	cfg.Wall.MaxSpeed = 0.5
	f := newFixture(t, cfg)
	f.m.Start(context.Background())
	for f.m.State() == GetReady {
		f.m.Tick(0.5)
	}
	f.m.RegisterBall()
	before := len(f.events.rows)

	// The frame that enters Playing already moved the wall a quarter row.
	f.m.Tick(1.6)
	if got := len(f.events.rows) - before; got != 1 {
		t.Fatalf("spawned %d rows, expected 1", got)
	}
	row := f.events.rows[len(f.events.rows)-1]
	if math.Abs(row.Y-14.05) > 1e-9 {
		t.Errorf("row spawned at %v, expected 14.05", row.Y)
	}
}

func TestSharedScheduler(t *testing.T) {
	sched := sequence.NewScheduler(context.Background())
	m := New(DefaultConfig(), Deps{
		Bricks:    spawn.MustTable([]int{1}),
		Scheduler: sched,
	})
	m.Start(context.Background())
	if sched.Len() != 1 {
		t.Errorf("scheduler has %d tasks, expected the start sequence", sched.Len())
	}

	sched.CancelAll()
	for i := 0; i < 20; i++ {
		m.Tick(0.5)
	}
	if m.State() != GetReady {
		t.Error("cancelled scheduler still ran the start sequence")
	}
}

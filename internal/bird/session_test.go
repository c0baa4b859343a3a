package bird

import (
	"math/rand"
	"testing"
)

func TestNewSession(t *testing.T) {
	s := NewSession(testConfig(), &scriptedRNG{values: []int{15}})

	p := s.Player()
	if p.X != 5 || p.Y != 25 || p.Velocity != 0 {
		t.Errorf("Player = %+v, expected (5, 25) at rest", p)
	}
	w := s.Wall()
	if w.X != 80 || w.GapCenter != 25 || w.GapSize != 20 {
		t.Errorf("Wall = %+v, expected X=80 center=25 gap=20", w)
	}
	if s.Score() != 0 {
		t.Errorf("Score = %d, expected 0", s.Score())
	}
}

func TestSessionPhysicsGatedByClock(t *testing.T) {
	s := NewSession(testConfig(), &scriptedRNG{})

	s.Step(false, 30)
	if s.Player().X != 5 {
		t.Errorf("X = %d, physics should not run before the step is exceeded", s.Player().X)
	}

	s.Step(false, 1)
	if s.Player().X != 6 {
		t.Errorf("X = %d, expected one physics step", s.Player().X)
	}
	if s.clock.acc != 0 {
		t.Errorf("clock should restart after a step, got %v", s.clock.acc)
	}
}

func TestSessionFlapNotGated(t *testing.T) {
	s := NewSession(testConfig(), &scriptedRNG{})

	s.Step(true, 0)
	if s.Player().Velocity != -2 {
		t.Errorf("Velocity = %v, expected -2 immediately", s.Player().Velocity)
	}
	if s.Player().X != 5 {
		t.Errorf("X = %d, flap should not advance physics", s.Player().X)
	}
}

func TestSessionEndsBelowScreen(t *testing.T) {
	s := NewSession(testConfig(), &scriptedRNG{})
	s.player.Y = 51 // below the 50-row screen, far from the wall plane

	if !s.Step(false, 0) {
		t.Error("Step should end the run when the player leaves the bottom")
	}
}

func TestSessionBottomEdgeIsSafe(t *testing.T) {
	s := NewSession(testConfig(), &scriptedRNG{})
	s.player.Y = 50

	if s.Step(false, 0) {
		t.Error("Y equal to the screen height should not end the run")
	}
}

func TestSessionEndsOnWallHit(t *testing.T) {
	s := NewSession(testConfig(), &scriptedRNG{values: []int{15}}) // gap rows 15..35
	s.player.X = s.wall.X - 1
	s.player.Y = 2

	if !s.Step(false, 31) {
		t.Fatal("Step should end the run when the player reaches the plane outside the gap")
	}
	if s.Score() != 0 {
		t.Errorf("Score = %d, a crash must not count as a pass", s.Score())
	}
	if s.Wall().X != 80 {
		t.Errorf("Wall replaced on the crash tick: %+v", s.Wall())
	}
}

func TestSessionScoresAndReplacesWall(t *testing.T) {
	rng := &scriptedRNG{values: []int{15, 3}}
	s := NewSession(testConfig(), rng)
	s.player.X = s.wall.X
	s.player.Y = 25

	if s.Step(false, 31) {
		t.Fatal("Step should not end the run inside the gap")
	}
	if s.Score() != 1 {
		t.Errorf("Score = %d, expected 1", s.Score())
	}

	w := s.Wall()
	if w.X != s.Player().X+80 {
		t.Errorf("new wall X = %d, expected player X + screen width = %d", w.X, s.Player().X+80)
	}
	if w.GapSize != 19 {
		t.Errorf("new wall GapSize = %d, expected 19", w.GapSize)
	}
	if w.GapCenter != 13 {
		t.Errorf("new wall GapCenter = %d, expected 13", w.GapCenter)
	}
}

func TestSessionWallStaysAhead(t *testing.T) {
	s := NewSession(testConfig(), rand.New(rand.NewSource(7)))

	for tick := 0; tick < 5000; tick++ {
		// Keep the player near the gap centre so runs last.
		flap := s.Player().Y > s.Wall().GapCenter && s.Player().Velocity >= 0
		if s.Step(flap, 16) {
			return
		}
		if s.Wall().X < s.Player().X {
			t.Fatalf("tick %d: wall X %d behind player X %d", tick, s.Wall().X, s.Player().X)
		}
		if s.Player().Y < 0 {
			t.Fatalf("tick %d: negative Y", tick)
		}
	}
}

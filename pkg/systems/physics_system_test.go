package systems

import (
	"math"
	"testing"

	"github.com/decker502/hopball/pkg/config"
)

func TestIntegrateSingleStep(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	s := newTestSession(cfg, nil)
	ps := NewPhysicsSystem(cfg)

	ps.Integrate(s)

	if math.Abs(s.Ball.Velocity-(-0.043)) > floatTolerance {
		t.Errorf("velocity: got %v, want -0.043", s.Ball.Velocity)
	}
	if math.Abs(s.Ball.Position.Y()-4.957) > floatTolerance {
		t.Errorf("height: got %v, want 4.957", s.Ball.Position.Y())
	}
}

func TestIntegrateAccumulates(t *testing.T) {
	cfg := config.DefaultGameplayConfig()

	tests := []struct {
		name   string
		frames int
	}{
		{"1 frame", 1},
		{"10 frames", 10},
		{"100 frames", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(cfg, nil)
			ps := NewPhysicsSystem(cfg)
			start := s.Ball.Position.Y()

			wantY := start
			for i := 1; i <= tt.frames; i++ {
				ps.Integrate(s)
				wantY += float64(i) * cfg.Gravity
			}

			wantV := float64(tt.frames) * cfg.Gravity
			if math.Abs(s.Ball.Velocity-wantV) > 1e-9 {
				t.Errorf("velocity after %d frames: got %v, want %v", tt.frames, s.Ball.Velocity, wantV)
			}
			if math.Abs(s.Ball.Position.Y()-wantY) > 1e-6 {
				t.Errorf("height after %d frames: got %v, want %v", tt.frames, s.Ball.Position.Y(), wantY)
			}
		})
	}
}

func TestIntegrateNoOpWhenInactive(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	s := newTestSession(cfg, nil)
	ps := NewPhysicsSystem(cfg)

	s.Fail()
	before := s.Ball.Position
	ps.Integrate(s)
	ps.AdvanceForward(s)

	if s.Ball.Position != before || s.Ball.Velocity != 0 {
		t.Errorf("inactive session must not move: got %v v=%v", s.Ball.Position, s.Ball.Velocity)
	}
}

func TestAdvanceForward(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	s := newTestSession(cfg, nil)
	ps := NewPhysicsSystem(cfg)

	// 目标等于当前位置时不移动
	ps.AdvanceForward(s)
	if s.Ball.Position.Z() != 0 {
		t.Fatalf("ball should stay at target, z=%v", s.Ball.Position.Z())
	}

	s.TargetDepth = -15
	camera := s.CameraDepth
	for i := 0; i < 100; i++ {
		ps.AdvanceForward(s)
	}

	if s.Ball.Position.Z() != -15 {
		t.Errorf("ball depth: got %v, want -15", s.Ball.Position.Z())
	}
	if s.CameraDepth != camera-15 {
		t.Errorf("camera depth: got %v, want %v", s.CameraDepth, camera-15)
	}
}

func TestAdvanceForwardOvershootNotCorrected(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	s := newTestSession(cfg, nil)
	ps := NewPhysicsSystem(cfg)

	s.TargetDepth = -0.8
	ps.AdvanceForward(s) // -0.5
	ps.AdvanceForward(s) // -1.0，越过目标
	ps.AdvanceForward(s) // 已越过，不再移动

	if s.Ball.Position.Z() != -1.0 {
		t.Errorf("ball depth: got %v, want -1.0 (one-step overshoot kept)", s.Ball.Position.Z())
	}
}

func TestBounceAndRefreshBounds(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	s := newTestSession(cfg, nil)
	ps := NewPhysicsSystem(cfg)

	s.Ball.Velocity = -0.5
	ps.Bounce(s)
	if s.Ball.Velocity != 0.7 {
		t.Errorf("velocity after bounce: got %v, want 0.7", s.Ball.Velocity)
	}

	s.Ball.Position[1] = 2
	ps.RefreshBounds(s)
	if math.Abs(s.Ball.Bounds.Min.Y()-1.3) > floatTolerance || math.Abs(s.Ball.Bounds.Max.Y()-2.7) > floatTolerance {
		t.Errorf("ball bounds Y: got [%v, %v], want [1.3, 2.7]", s.Ball.Bounds.Min.Y(), s.Ball.Bounds.Max.Y())
	}
}

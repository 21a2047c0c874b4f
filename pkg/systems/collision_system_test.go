package systems

import (
	"testing"

	"github.com/decker502/hopball/pkg/components"
	"github.com/decker502/hopball/pkg/config"
	"github.com/decker502/hopball/pkg/game"
	"github.com/go-gl/mathgl/mgl64"
)

func newTestCollisionSystem(cfg *config.GameplayConfig) *CollisionSystem {
	return NewCollisionSystem(NewPhysicsSystem(cfg), cfg.FailThreshold)
}

func TestAABBIntersects(t *testing.T) {
	half := mgl64.Vec3{1, 1, 1}
	base := components.NewAABBFromCenter(mgl64.Vec3{0, 0, 0}, half)

	tests := []struct {
		name   string
		center mgl64.Vec3
		want   bool
	}{
		{"完全重叠", mgl64.Vec3{0, 0, 0}, true},
		{"部分重叠", mgl64.Vec3{1, 1, 1}, true},
		{"边界刚好接触", mgl64.Vec3{2, 0, 0}, true},
		{"X轴分离", mgl64.Vec3{2.01, 0, 0}, false},
		{"Y轴分离", mgl64.Vec3{0, -2.5, 0}, false},
		{"Z轴分离", mgl64.Vec3{0, 0, 3}, false},
		{"仅两轴重叠", mgl64.Vec3{0.5, 0.5, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := components.NewAABBFromCenter(tt.center, half)
			if got := base.Intersects(other); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := other.Intersects(base); got != tt.want {
				t.Errorf("Intersects() not symmetric: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollisionBounceIffOverlap(t *testing.T) {
	cfg := config.DefaultGameplayConfig()

	tests := []struct {
		name       string
		position   mgl64.Vec3
		wantBounce bool
	}{
		{"正好落在平台上", mgl64.Vec3{0, 0.5, 0}, true},
		{"贴着平台上表面", mgl64.Vec3{0, 0.95, 0}, true},
		{"平台上方", mgl64.Vec3{0, 0.96, 0}, false},
		{"平台边缘外侧", mgl64.Vec3{3.3, 0.5, 0}, false},
		{"平台边缘内侧", mgl64.Vec3{3.1, 0.5, 0}, true},
		{"深度错开", mgl64.Vec3{0, 0.5, -3.3}, false},
		{"平台下方", mgl64.Vec3{0, -1, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &countingListener{}
			s := newTestSession(cfg, rec)
			cs := newTestCollisionSystem(cfg)

			s.Ball.Position = tt.position
			s.Ball.Velocity = -0.3
			hit := cs.Update(s)

			if hit != tt.wantBounce {
				t.Fatalf("Update() = %v, want %v", hit, tt.wantBounce)
			}
			if tt.wantBounce {
				if s.Ball.Velocity != cfg.BounceVelocity {
					t.Errorf("velocity: got %v, want %v", s.Ball.Velocity, cfg.BounceVelocity)
				}
				if s.State != game.StateOnLead {
					t.Errorf("State: got %v, want OnLead", s.State)
				}
				if rec.bounces != 1 {
					t.Errorf("bounce events: got %d, want 1", rec.bounces)
				}
			} else {
				if s.Ball.Velocity != -0.3 {
					t.Errorf("velocity must not change without overlap, got %v", s.Ball.Velocity)
				}
				if s.State != game.StateAirborne {
					t.Errorf("State: got %v, want Airborne", s.State)
				}
			}
			if s.Score() != 0 {
				t.Errorf("score must not change without press, got %d", s.Score())
			}
		})
	}
}

func TestCollisionScoresWhenPressed(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	rec := &countingListener{}
	s := newTestSession(cfg, rec)
	cs := newTestCollisionSystem(cfg)

	// 先跳到第二个平台，使领头平台位于 -15
	s.Track.Advance()
	alignLead(s)
	spawnedBefore := rec.spawned

	lead := s.Track.Lead()
	if lead.Depth != -15 {
		t.Fatalf("lead depth: got %v, want -15", lead.Depth)
	}
	second := s.Track.At(1)
	nextSpawn := s.Track.NextSpawnDepth()

	s.Ball.Position = mgl64.Vec3{0, 0.5, -15}
	s.Pointer.Pressed = true

	if !cs.Update(s) {
		t.Fatal("expected contact with lead platform")
	}

	if s.Score() != 1 {
		t.Errorf("score: got %d, want 1", s.Score())
	}
	if rec.lastScore != 1 {
		t.Errorf("score event: got %d, want 1", rec.lastScore)
	}
	if s.Track.Lead() != second {
		t.Error("previous index-1 platform should be the new lead")
	}
	if s.TargetDepth != second.Depth {
		t.Errorf("TargetDepth: got %v, want %v", s.TargetDepth, second.Depth)
	}
	last := s.Track.At(s.Track.Len() - 1)
	if last.Depth != nextSpawn {
		t.Errorf("new platform depth: got %v, want %v", last.Depth, nextSpawn)
	}
	if s.Track.Len() != cfg.TrackLength {
		t.Errorf("track length: got %d, want %d", s.Track.Len(), cfg.TrackLength)
	}
	if rec.spawned != spawnedBefore+1 {
		t.Errorf("spawn events: got %d, want %d", rec.spawned, spawnedBefore+1)
	}
}

func TestCollisionOnlyTestsLead(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	s := newTestSession(cfg, nil)
	cs := newTestCollisionSystem(cfg)

	// 小球放在第二个平台上，领头平台在深度 0
	second := s.Track.At(1)
	s.Ball.Position = mgl64.Vec3{second.LocalX, 0.5, second.Depth}
	s.Pointer.Pressed = true

	if cs.Update(s) {
		t.Error("platforms other than the lead must not be tested")
	}
	if s.Score() != 0 {
		t.Errorf("score: got %d, want 0", s.Score())
	}
}

func TestCheckFailure(t *testing.T) {
	cfg := config.DefaultGameplayConfig()

	tests := []struct {
		name     string
		height   float64
		wantFail bool
	}{
		{"above threshold", 0, false},
		{"at threshold", -5, false},
		{"below threshold", -6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &countingListener{}
			s := newTestSession(cfg, rec)
			cs := newTestCollisionSystem(cfg)

			s.Ball.Position[1] = tt.height
			got := cs.CheckFailure(s)

			if got != tt.wantFail {
				t.Fatalf("CheckFailure() = %v, want %v", got, tt.wantFail)
			}
			if s.Active() == tt.wantFail {
				t.Errorf("Active: got %v, want %v", s.Active(), !tt.wantFail)
			}
			if tt.wantFail && rec.failures != 1 {
				t.Errorf("failure events: got %d, want 1", rec.failures)
			}
		})
	}
}

func TestNoScoringAfterFailure(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	s := newTestSession(cfg, nil)
	cs := newTestCollisionSystem(cfg)

	s.Ball.Position[1] = -6
	cs.CheckFailure(s)

	lead := s.Track.Lead()
	s.Ball.Position = mgl64.Vec3{0, 0.5, 0}
	s.Pointer.Pressed = true

	if cs.Update(s) {
		t.Error("failed session must not register contact")
	}
	if s.Score() != 0 {
		t.Errorf("score: got %d, want 0", s.Score())
	}
	if s.Track.Lead() != lead {
		t.Error("track must not advance after failure")
	}
	if s.State != game.StateFailed {
		t.Errorf("State: got %v, want Failed", s.State)
	}
}

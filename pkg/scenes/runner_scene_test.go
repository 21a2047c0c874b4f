package scenes

import (
	"math/rand/v2"
	"testing"

	"github.com/decker502/hopball/pkg/components"
	"github.com/decker502/hopball/pkg/config"
	"github.com/decker502/hopball/pkg/ecs"
	"github.com/decker502/hopball/pkg/game"
	"github.com/decker502/hopball/pkg/utils"
)

func newTestScene(t *testing.T, policy config.FailurePolicy) *RunnerScene {
	t.Helper()
	cfg := config.DefaultGameplayConfig()
	cfg.OnFailure = policy
	return NewRunnerScene(cfg, rand.New(rand.NewPCG(3, 5)), game.NewScoreManager(nil))
}

func platformEntities(s *RunnerScene) []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.PlatformComponent](s.entityManager)
}

func TestRunnerSceneAllocatesPlatformHandles(t *testing.T) {
	s := newTestScene(t, config.FailureWaitForInput)

	if got := len(platformEntities(s)); got != 6 {
		t.Fatalf("platform entities: got %d, want 6", got)
	}
	for i, p := range s.driver.Session().Track.Platforms() {
		if p.Handle == ecs.InvalidEntity {
			t.Errorf("platform %d has no visual handle", i)
		}
	}
	if _, ok := ecs.GetComponent[*components.BallComponent](s.entityManager, s.ballEntity); !ok {
		t.Error("ball entity should carry the session ball")
	}
}

func TestRunnerSceneAdvanceRecyclesEntities(t *testing.T) {
	s := newTestScene(t, config.FailureWaitForInput)
	track := s.driver.Session().Track

	retired := track.Lead().Handle
	track.Advance()
	s.step()

	if _, ok := ecs.GetComponent[*components.PlatformComponent](s.entityManager, retired); ok {
		t.Error("retired platform entity should be removed at frame end")
	}
	if got := len(platformEntities(s)); got != 6 {
		t.Errorf("platform entities after advance: got %d, want 6", got)
	}
}

func TestRunnerSceneCameraFollowsSession(t *testing.T) {
	s := newTestScene(t, config.FailureWaitForInput)
	session := s.driver.Session()
	session.TargetDepth = -15

	for i := 0; i < 4; i++ {
		s.step()
	}

	eye := s.renderSystem.Camera().Eye
	if eye.Z() != session.CameraDepth {
		t.Errorf("camera depth: got %v, want %v", eye.Z(), session.CameraDepth)
	}
	if eye.Z() >= s.cfg.Camera.Distance {
		t.Errorf("camera should have moved forward from %v, at %v", s.cfg.Camera.Distance, eye.Z())
	}
}

func TestRunnerScenePointerDrivesInput(t *testing.T) {
	s := newTestScene(t, config.FailureWaitForInput)
	session := s.driver.Session()
	startOffset := session.Track.Offset()

	s.handlePointer(mouse(true, 100))
	if !session.Pointer.Pressed {
		t.Fatal("press should set the pressed flag")
	}

	s.handlePointer(mouse(true, 150))
	want := startOffset + 50*s.cfg.DragSensitivity
	if got := session.Track.Offset(); got != want {
		t.Errorf("track offset after drag: got %v, want %v", got, want)
	}

	s.handlePointer(mouse(false, 150))
	if session.Pointer.Pressed {
		t.Error("release should clear the pressed flag")
	}

	// 无坐标的按下被记录后忽略
	s.handlePointer(utils.PointerSample{Down: true, TouchID: -1})
	if session.Pointer.Pressed {
		t.Error("press without coordinate must not change pressed state")
	}
}

func TestRunnerSceneRestartAfterFailure(t *testing.T) {
	s := newTestScene(t, config.FailureWaitForInput)
	first := s.driver.Session()
	first.Track.Shift(100) // 移开轨道，小球直接落空

	for i := 0; i < 200 && first.Active(); i++ {
		s.step()
	}
	if first.Active() {
		t.Fatal("session should fail once the track is moved away")
	}
	if s.scoreManager.Record().GamesPlayed != 1 {
		t.Errorf("score manager should record the failed game")
	}

	s.handlePointer(mouse(true, 10))
	s.step()

	second := s.driver.Session()
	if second == first || !second.Active() {
		t.Fatal("press after failure should start a new session")
	}
	if got := len(platformEntities(s)); got != 6 {
		t.Errorf("platform entities after restart: got %d, want 6", got)
	}
	if ball, _ := ecs.GetComponent[*components.BallComponent](s.entityManager, s.ballEntity); ball != second.Ball {
		t.Error("ball entity should track the new session's ball")
	}
}

func TestRunnerSceneScoreText(t *testing.T) {
	s := newTestScene(t, config.FailureAutoRestart)
	if got := s.scoreText(); got != "SCORE 0\nBEST  0" {
		t.Errorf("scoreText: got %q", got)
	}
	if !s.SaveOnExit() {
		t.Error("SaveOnExit without gdata should succeed")
	}
}

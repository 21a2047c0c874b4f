package systems

import (
	"math/rand/v2"

	"github.com/decker502/hopball/pkg/components"
	"github.com/decker502/hopball/pkg/config"
	"github.com/decker502/hopball/pkg/game"
)

const floatTolerance = 1e-9

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1024))
}

func newTestSession(cfg *config.GameplayConfig, listener game.Listener) *game.Session {
	return game.NewSession(cfg, newTestRand(), listener)
}

// alignLead 平移轨道，使领头平台正对小球
func alignLead(s *game.Session) {
	lead := s.Track.Lead()
	s.Track.Shift(s.Ball.Position.X() - (s.Track.Offset() + lead.LocalX))
}

// countingListener 统计事件次数
type countingListener struct {
	game.NopListener
	spawned, retired, bounces, failures int
	lastScore                           int
}

func (c *countingListener) PlatformSpawned(*components.PlatformComponent) { c.spawned++ }
func (c *countingListener) PlatformRetired(*components.PlatformComponent) { c.retired++ }
func (c *countingListener) Bounced()                                      { c.bounces++ }
func (c *countingListener) ScoreChanged(score int)                        { c.lastScore = score }
func (c *countingListener) SessionFailed(int)                             { c.failures++ }

// countingRenderer 统计 Present 调用
type countingRenderer struct {
	frames int
}

func (r *countingRenderer) Present(*game.Session) { r.frames++ }

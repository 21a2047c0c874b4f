package game

import (
	"log"
	"math/rand/v2"

	"github.com/decker502/hopball/pkg/components"
	"github.com/decker502/hopball/pkg/config"
	"github.com/go-gl/mathgl/mgl64"
)

// CollisionState 小球相对领头平台的状态
type CollisionState int

const (
	// StateAirborne 小球在空中
	StateAirborne CollisionState = iota
	// StateOnLead 小球与领头平台接触
	StateOnLead
	// StateFailed 小球掉出轨道，会话终止
	StateFailed
)

func (s CollisionState) String() string {
	switch s {
	case StateAirborne:
		return "Airborne"
	case StateOnLead:
		return "OnLead"
	case StateFailed:
		return "Failed"
	}
	return "Unknown"
}

// Session 一局游戏：从开始到失败终止
//
// Session 独占轨道、小球与指针状态，替代全局可变状态；
// 可同时存在多个会话（测试中常见）。重新开始意味着创建新的 Session。
type Session struct {
	Track   *Track
	Ball    *components.BallComponent
	Pointer components.PointerState

	// TargetDepth 小球正在前往的深度
	TargetDepth float64
	// CameraDepth 跟随相机的深度，与小球同步前进
	CameraDepth float64
	// State 当前碰撞状态
	State CollisionState
	// Frame 已执行的帧数
	Frame uint64

	score  int
	active bool

	cfg      *config.GameplayConfig
	listener Listener
}

// NewSession 按配置创建新会话
//
// 参数:
//   - cfg: 玩法配置（需已通过 Validate）
//   - rng: 平台随机源
//   - listener: 事件接收者，可为 nil
func NewSession(cfg *config.GameplayConfig, rng *rand.Rand, listener Listener) *Session {
	if listener == nil {
		listener = NopListener{}
	}

	s := &Session{
		Track:       NewTrack(cfg, rng, listener),
		Ball:        components.NewBall(mgl64.Vec3{0, cfg.Ball.StartHeight, 0}, cfg.Ball.Radius),
		CameraDepth: cfg.Camera.Distance,
		State:       StateAirborne,
		active:      true,
		cfg:         cfg,
		listener:    listener,
	}
	return s
}

// Score 返回当前分数
func (s *Session) Score() int {
	return s.score
}

// Active 会话是否仍在进行
func (s *Session) Active() bool {
	return s.active
}

// Config 返回会话使用的玩法配置
func (s *Session) Config() *config.GameplayConfig {
	return s.cfg
}

// Listener 返回会话的事件接收者
func (s *Session) Listener() Listener {
	return s.listener
}

// AddPoint 分数加一并通知监听者
// 会话失败后调用无效
func (s *Session) AddPoint() {
	if !s.active {
		return
	}
	s.score++
	s.listener.ScoreChanged(s.score)
}

// Fail 使会话进入终止状态，只会生效一次
func (s *Session) Fail() {
	if !s.active {
		return
	}
	s.active = false
	s.State = StateFailed
	log.Printf("[Session] Failed at frame %d, score=%d", s.Frame, s.score)
	s.listener.SessionFailed(s.score)
}

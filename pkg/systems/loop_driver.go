package systems

import (
	"log"
	"math/rand/v2"

	"github.com/decker502/hopball/pkg/config"
	"github.com/decker502/hopball/pkg/game"
)

// Renderer 外部渲染协作者，每帧逻辑结束后调用
type Renderer interface {
	Present(s *game.Session)
}

// LoopDriver 帧循环驱动器
//
// 每帧固定顺序：物理积分 → 向前移动 → 重算包围盒与碰撞计分 → 失败检测 → 交给渲染。
// 会话失败后按 OnFailure 策略自动重启，或停止调度直到下一次按下指针。
type LoopDriver struct {
	cfg       *config.GameplayConfig
	scheduler Scheduler
	rng       *rand.Rand
	listener  game.Listener
	renderer  Renderer

	input     *InputSystem
	physics   *PhysicsSystem
	collision *CollisionSystem

	session  *game.Session
	running  bool
	restarts int
	// generation 每次重启递增，使旧会话遗留的帧回调失效
	generation uint64
}

// NewLoopDriver 创建循环驱动器并建立第一局会话
//
// 参数:
//   - cfg: 玩法配置
//   - scheduler: 帧调度器
//   - rng: 平台随机源，所有会话共用
//   - listener: 会话事件接收者，可为 nil
//   - renderer: 渲染协作者，可为 nil（无界面模拟）
func NewLoopDriver(cfg *config.GameplayConfig, scheduler Scheduler, rng *rand.Rand,
	listener game.Listener, renderer Renderer) *LoopDriver {
	if listener == nil {
		listener = game.NopListener{}
	}

	physics := NewPhysicsSystem(cfg)
	d := &LoopDriver{
		cfg:       cfg,
		scheduler: scheduler,
		rng:       rng,
		listener:  listener,
		renderer:  renderer,
		physics:   physics,
		collision: NewCollisionSystem(physics, cfg.FailThreshold),
	}
	d.input = NewInputSystem(cfg.DragSensitivity, d.Restart)
	d.session = game.NewSession(cfg, rng, listener)
	d.input.Bind(d.session)
	return d
}

// Start 开始调度帧循环，已在运行时无效
func (d *LoopDriver) Start() {
	if d.running {
		return
	}
	d.running = true
	d.schedule()
}

func (d *LoopDriver) schedule() {
	gen := d.generation
	d.scheduler.RequestNextFrame(func() { d.frame(gen) })
}

func (d *LoopDriver) frame(gen uint64) {
	if !d.running || gen != d.generation {
		return
	}

	d.Step()

	if d.session.Active() {
		d.schedule()
		return
	}

	d.running = false
	switch d.cfg.OnFailure {
	case config.FailureAutoRestart:
		d.Restart()
	default:
		log.Printf("[LoopDriver] Session failed with score %d, waiting for input", d.session.Score())
	}
}

// Step 同步执行一帧逻辑，不涉及调度
func (d *LoopDriver) Step() {
	s := d.session
	if s.Active() {
		s.Frame++
	}

	d.physics.Integrate(s)
	d.physics.AdvanceForward(s)
	d.collision.Update(s)
	d.collision.CheckFailure(s)

	if d.renderer != nil {
		d.renderer.Present(s)
	}
}

// Restart 丢弃当前会话，创建新会话并恢复调度
func (d *LoopDriver) Restart() {
	old := d.session
	for _, p := range old.Track.Platforms() {
		d.listener.PlatformRetired(p)
	}

	d.session = game.NewSession(d.cfg, d.rng, d.listener)
	d.input.Bind(d.session)
	d.restarts++
	d.generation++
	log.Printf("[LoopDriver] Restart #%d (previous score %d)", d.restarts, old.Score())

	d.running = false
	d.Start()
}

// Session 返回当前会话
func (d *LoopDriver) Session() *game.Session {
	return d.session
}

// Input 返回输入系统，输入协作者通过它投递指针事件
func (d *LoopDriver) Input() *InputSystem {
	return d.input
}

// Running 是否有帧在调度中
func (d *LoopDriver) Running() bool {
	return d.running
}

// Restarts 返回重启次数
func (d *LoopDriver) Restarts() int {
	return d.restarts
}

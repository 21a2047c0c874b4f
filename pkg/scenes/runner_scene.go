package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/decker502/hopball/pkg/components"
	"github.com/decker502/hopball/pkg/config"
	"github.com/decker502/hopball/pkg/ecs"
	"github.com/decker502/hopball/pkg/game"
	"github.com/decker502/hopball/pkg/systems"
	"github.com/decker502/hopball/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunnerScene 跳球主场景
//
// 同时扮演核心循环的三个外部协作者：
//   - game.Listener: 平台生成/滑出时分配与回收可视实体
//   - systems.Renderer: 每帧逻辑结束后同步相机
//   - 输入源: 把鼠标/触摸采样转换为指针事件投递给 InputSystem
//
// Ebitengine 每个 Update tick 执行一次 FrameQueue.RunPending，即一帧游戏逻辑。
type RunnerScene struct {
	game.NopListener

	cfg          *config.GameplayConfig
	frames       *systems.FrameQueue
	driver       *systems.LoopDriver
	scoreManager *game.ScoreManager

	entityManager *ecs.EntityManager
	renderSystem  *systems.RenderSystem
	ballEntity    ecs.EntityID

	pointer *PointerSource
	session *game.Session // 最近一次 Present 的会话
}

// NewRunnerScene 创建场景并启动帧循环
//
// 参数：
//   - cfg: 玩法配置
//   - rng: 平台随机源
//   - scoreManager: 成绩管理器，可为 nil
//   - extra: 其他会话监听者（如音效管理器）
func NewRunnerScene(cfg *config.GameplayConfig, rng *rand.Rand, scoreManager *game.ScoreManager, extra ...game.Listener) *RunnerScene {
	em := ecs.NewEntityManager()
	camera := components.NewCameraComponent(cfg.Camera.FOV, config.GameWindowWidth, config.GameWindowHeight)

	s := &RunnerScene{
		cfg:           cfg,
		frames:        &systems.FrameQueue{},
		scoreManager:  scoreManager,
		entityManager: em,
		renderSystem:  systems.NewRenderSystem(em, camera),
		pointer:       NewPointerSource(),
	}

	s.ballEntity = em.CreateEntity()
	ecs.AddComponent(em, s.ballEntity, &components.MeshComponent{
		Kind:  components.MeshSphere,
		Size:  mgl64.Vec3{cfg.Ball.Radius, cfg.Ball.Radius, cfg.Ball.Radius},
		Color: config.BallColor,
	})

	listeners := game.MultiListener{s}
	if scoreManager != nil {
		listeners = append(listeners, scoreManager)
	}
	listeners = append(listeners, extra...)

	s.driver = systems.NewLoopDriver(cfg, s.frames, rng, listeners, s)
	s.Present(s.driver.Session())
	s.driver.Start()

	log.Printf("[RunnerScene] Started (onFailure=%s, %d platforms)", cfg.OnFailure, s.driver.Session().Track.Len())
	return s
}

// PlatformSpawned 为新平台分配可视实体
func (s *RunnerScene) PlatformSpawned(p *components.PlatformComponent) {
	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.MeshComponent{
		Kind:  components.MeshBox,
		Size:  mgl64.Vec3{s.cfg.Platform.Width, s.cfg.Platform.Height, s.cfg.Platform.Depth},
		Color: config.PlatformColor,
	})
	ecs.AddComponent(s.entityManager, id, p)
	p.Handle = id
}

// PlatformRetired 回收平台的可视实体（帧末统一清理）
func (s *RunnerScene) PlatformRetired(p *components.PlatformComponent) {
	if p.Handle == ecs.InvalidEntity {
		return
	}
	s.entityManager.DestroyEntity(p.Handle)
	p.Handle = ecs.InvalidEntity
}

// Present 同步相机与小球实体到当前会话
func (s *RunnerScene) Present(session *game.Session) {
	if s.session != session {
		// 重启后换上新会话的小球
		ecs.AddComponent(s.entityManager, s.ballEntity, session.Ball)
		s.session = session
	}
	s.renderSystem.Camera().MoveTo(mgl64.Vec3{0, s.cfg.Camera.Height, session.CameraDepth})
}

// Update 采样指针并执行一帧游戏逻辑
func (s *RunnerScene) Update(deltaTime float64) {
	s.handlePointer(utils.SamplePointer(s.pointer.TouchID()))
	s.step()
}

func (s *RunnerScene) step() {
	s.frames.RunPending()
	s.entityManager.RemoveMarkedEntities()
}

func (s *RunnerScene) handlePointer(sample utils.PointerSample) {
	action, ev := s.pointer.Next(sample)

	var err error
	input := s.driver.Input()
	switch action {
	case PointerPress:
		err = input.PressStart(ev)
	case PointerMove:
		err = input.Move(ev)
	case PointerRelease:
		input.PressEnd()
	}

	var inputErr *systems.InputError
	if errors.As(err, &inputErr) {
		log.Printf("[RunnerScene] Ignoring pointer sample: %v", err)
	}
}

// Draw 绘制平台、小球与分数
func (s *RunnerScene) Draw(screen *ebiten.Image) {
	bg := config.BackgroundColor
	screen.Fill(color.RGBA{R: bg[0], G: bg[1], B: bg[2], A: bg[3]})

	session := s.driver.Session()
	s.renderSystem.Draw(screen, session.Track.Offset())

	ebitenutil.DebugPrintAt(screen, s.scoreText(), config.ScoreTextX, config.ScoreTextY)
	if !session.Active() {
		hint := restartHint()
		ebitenutil.DebugPrintAt(screen, hint, hintTextLeft(hint), config.HintTextY)
	}
}

// restartHint 失败提示，移动端为触摸，桌面端为鼠标
func restartHint() string {
	if utils.IsMobile() {
		return "TAP TO RESTART"
	}
	return "CLICK TO RESTART"
}

// hintTextLeft 返回使提示文本以 HintTextX 居中的左侧X坐标
func hintTextLeft(text string) int {
	return config.HintTextX - len(text)*config.DebugGlyphWidth/2
}

func (s *RunnerScene) scoreText() string {
	text := fmt.Sprintf("SCORE %d", s.driver.Session().Score())
	if s.scoreManager != nil {
		text += fmt.Sprintf("\nBEST  %d", s.scoreManager.Best())
	}
	return text
}

// SaveOnExit 窗口关闭时保存成绩记录
func (s *RunnerScene) SaveOnExit() bool {
	if s.scoreManager == nil {
		return true
	}
	if err := s.scoreManager.Save(); err != nil {
		log.Printf("[RunnerScene] Warning: failed to save scores on exit: %v", err)
		return false
	}
	return true
}

// Driver 返回循环驱动器
func (s *RunnerScene) Driver() *systems.LoopDriver {
	return s.driver
}

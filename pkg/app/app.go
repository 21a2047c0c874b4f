// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/decker502/hopball/pkg/config"
	"github.com/decker502/hopball/pkg/embedded"
	"github.com/decker502/hopball/pkg/game"
	"github.com/decker502/hopball/pkg/scenes"
	"github.com/decker502/hopball/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "hopball"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 玩法配置文件路径，为空则使用内嵌的 data/gameplay.yaml
	ConfigPath string
	// OnFailure 覆盖配置中的失败策略（"auto-restart" 或 "wait-for-input"），为空不覆盖
	OnFailure string
	// Seed 平台随机种子，0 表示使用当前时间
	Seed uint64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用内嵌配置前需先调用 embedded.Init()；未初始化时退回默认配置。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameplay, err := LoadGameplay(cfg.ConfigPath, cfg.OnFailure)
	if err != nil {
		return nil, err
	}

	gdataManager := openStorage()
	settingsManager := game.NewSettingsManager(gdataManager)
	scoreManager := game.NewScoreManager(gdataManager)

	audioContext := audio.NewContext(48000)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized")

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	log.Printf("[App] Seed: %d", seed)

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		return scenes.NewRunnerScene(gameplay, rng, scoreManager, audioManager)
	})
	if !sceneManager.Reload() {
		return nil, fmt.Errorf("failed to create runner scene")
	}

	ebiten.SetFullscreen(settingsManager.GetSettings().Fullscreen)

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
	}, nil
}

// LoadGameplay 加载玩法配置并应用失败策略覆盖
//
// 参数：
//   - path: 配置文件路径，为空时依次尝试内嵌配置和默认配置
//   - onFailure: 失败策略覆盖，为空不覆盖
func LoadGameplay(path, onFailure string) (*config.GameplayConfig, error) {
	var (
		gameplay *config.GameplayConfig
		err      error
	)

	switch {
	case path != "":
		gameplay, err = config.LoadGameplayConfig(path)
		log.Printf("[Config] 加载玩法配置: %s", path)
	case embedded.IsInitialized():
		var data []byte
		data, err = embedded.ReadFile("data/gameplay.yaml")
		if err == nil {
			gameplay, err = config.LoadGameplayConfigFromBytes(data)
		}
		log.Printf("[Config] 加载内嵌玩法配置: data/gameplay.yaml")
	default:
		gameplay = config.DefaultGameplayConfig()
		log.Printf("[Config] 使用默认玩法配置")
	}
	if err != nil {
		return nil, fmt.Errorf("玩法配置加载失败: %w", err)
	}

	if onFailure != "" {
		policy, err := config.ParseFailurePolicy(onFailure)
		if err != nil {
			return nil, fmt.Errorf("invalid --on-failure: %w", err)
		}
		gameplay.OnFailure = policy
	}
	return gameplay, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（设置与成绩退化为仅内存）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: AppName,
	})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, running without persistence: %v", err)
		return nil
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// M 切换音效
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := a.settingsManager.ToggleSound()
		log.Printf("[App] Sound enabled: %v", enabled)
		a.saveSettings()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存成绩
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

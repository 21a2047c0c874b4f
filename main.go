package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/hopball/pkg/app"
	"github.com/decker502/hopball/pkg/config"
	"github.com/decker502/hopball/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "玩法配置文件路径（默认使用内嵌的 data/gameplay.yaml）")
	onFailure  = flag.String("on-failure", "", "失败策略: auto-restart 或 wait-for-input")
	seed       = flag.Uint64("seed", 0, "平台随机种子（0 表示随机）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		OnFailure:  *onFailure,
		Seed:       *seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Hopball")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(&closingGame{App: gameApp}); err != nil {
		log.Fatal(err)
	}
}

//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 手动构建：
//
//	# Android
//	mkdir -p mobile/data && cp data/gameplay.yaml mobile/data/ && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.hopball -o build/android/hopball.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	mkdir -p mobile/data && cp data/gameplay.yaml mobile/data/ && ebitenmobile bind -target ios -tags mobile -o build/ios/Hopball.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/hopball/pkg/app"
	"github.com/decker502/hopball/pkg/embedded"
)

func init() {
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose: true,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}

package main

import (
	"log"

	"github.com/decker502/hopball/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

// closingGame 在窗口关闭前让当前场景保存状态
type closingGame struct {
	*app.App
}

func (g *closingGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if !g.GetSceneManager().SaveOnExit() {
			log.Printf("[Main] Warning: save on exit failed")
		}
		return ebiten.Termination
	}
	return g.App.Update()
}

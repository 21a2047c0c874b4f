package main

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/decker502/hopball/pkg/components"
	"github.com/decker502/hopball/pkg/config"
	"github.com/decker502/hopball/pkg/game"
	"github.com/decker502/hopball/pkg/systems"
)

// 自动驾驶模式
const (
	ModeIdle  = "idle"  // 从不按下
	ModeHold  = "hold"  // 一直按住，不拖动
	ModeSteer = "steer" // 一直按住，并拖动轨道让下一个平台对准小球
)

// pilot 脚本化输入：每帧在逻辑之前投递指针事件
type pilot struct {
	mode    string
	maxDrag float64 // 每帧最大拖动像素
	x       float64 // 当前指针横坐标
}

func (p *pilot) apply(input *systems.InputSystem, s *game.Session, sensitivity float64) {
	if p.mode == ModeIdle {
		return
	}
	if !input.Pressed() {
		_ = input.PressStart(components.PointerAt(p.x))
		return
	}
	if p.mode != ModeSteer {
		return
	}

	// 让领头平台的世界 X 回到小球正下方
	need := s.Ball.Position.X() - (s.Track.Offset() + s.Track.Lead().LocalX)
	dx := math.Max(-p.maxDrag, math.Min(p.maxDrag, need/sensitivity))
	if dx == 0 {
		return
	}
	p.x += dx
	_ = input.Move(components.PointerAt(p.x))
}

// runResult 一局的结果
type runResult struct {
	Score    int
	Frames   uint64
	Finished bool // false 表示帧数用尽时仍在进行
}

// report 模拟结果：每局结果与循环重启次数
type report struct {
	Runs     []runResult
	Restarts int
}

// options 模拟参数
type options struct {
	Mode      string
	Runs      int
	MaxFrames int
	MaxDrag   float64
	Seed      uint64
}

// recorder 记录每局结束时的分数
type recorder struct {
	game.NopListener
	finals []int
}

func (r *recorder) SessionFailed(finalScore int) {
	r.finals = append(r.finals, finalScore)
}

// simulate 无界面运行帧循环，直到完成 Runs 局或帧数用尽
func simulate(cfg *config.GameplayConfig, opts options) (report, error) {
	switch opts.Mode {
	case ModeIdle, ModeHold, ModeSteer:
	default:
		return report{}, fmt.Errorf("unknown mode %q (want %s, %s or %s)", opts.Mode, ModeIdle, ModeHold, ModeSteer)
	}

	queue := &systems.FrameQueue{}
	rec := &recorder{}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	driver := systems.NewLoopDriver(cfg, queue, rng, rec, nil)
	driver.Start()

	p := &pilot{mode: opts.Mode, maxDrag: opts.MaxDrag}
	var results []runResult

	for i := 0; i < opts.MaxFrames && len(results) < opts.Runs; i++ {
		s := driver.Session()
		if !s.Active() {
			// 等待输入策略：按下即重新开始
			_ = driver.Input().PressStart(components.PointerAt(p.x))
			continue
		}

		p.apply(driver.Input(), s, cfg.DragSensitivity)
		queue.RunPending()

		if !s.Active() {
			results = append(results, runResult{Score: s.Score(), Frames: s.Frame, Finished: true})
		}
	}

	if s := driver.Session(); len(results) < opts.Runs && s.Active() {
		results = append(results, runResult{Score: s.Score(), Frames: s.Frame})
	}
	rep := report{Runs: results, Restarts: driver.Restarts()}
	finished := countFinished(results)
	if len(rec.finals) != finished {
		return rep, fmt.Errorf("listener saw %d failures, loop saw %d", len(rec.finals), finished)
	}
	// 每次重启都由一次失败触发；最后一次失败之后可能尚未重启
	if rep.Restarts > finished || rep.Restarts < finished-1 {
		return rep, fmt.Errorf("loop restarted %d times after %d failures", rep.Restarts, finished)
	}
	return rep, nil
}

func countFinished(results []runResult) int {
	n := 0
	for _, r := range results {
		if r.Finished {
			n++
		}
	}
	return n
}

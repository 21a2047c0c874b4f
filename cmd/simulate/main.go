// simulate 无界面运行跳球帧循环，用脚本化输入评估玩法配置
//
// 用法：
//
//	go run ./cmd/simulate --mode steer --runs 5 --frames 20000
//	go run ./cmd/simulate --config my_gameplay.yaml --mode hold --seed 7
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/hopball/pkg/app"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "data/gameplay.yaml", "玩法配置文件路径")
	onFailure  = flag.String("on-failure", "", "失败策略: auto-restart 或 wait-for-input")
	mode       = flag.String("mode", ModeSteer, "输入脚本: idle, hold, steer")
	runs       = flag.Int("runs", 3, "模拟局数")
	maxFrames  = flag.Int("frames", 10000, "最多执行的帧数")
	maxDrag    = flag.Float64("max-drag", 40, "steer 模式每帧最大拖动像素")
	seed       = flag.Uint64("seed", 1, "平台随机种子")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := app.LoadGameplay(*configPath, *onFailure)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	rep, err := simulate(cfg, options{
		Mode:      *mode,
		Runs:      *runs,
		MaxFrames: *maxFrames,
		MaxDrag:   *maxDrag,
		Seed:      *seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("mode=%s seed=%d onFailure=%s\n", *mode, *seed, cfg.OnFailure)
	fmt.Printf("%-5s %-7s %-8s %s\n", "run", "score", "frames", "status")
	best := 0
	for i, r := range rep.Runs {
		status := "failed"
		if !r.Finished {
			status = "running"
		}
		fmt.Printf("%-5d %-7d %-8d %s\n", i+1, r.Score, r.Frames, status)
		best = max(best, r.Score)
	}
	fmt.Printf("best=%d restarts=%d\n", best, rep.Restarts)
}

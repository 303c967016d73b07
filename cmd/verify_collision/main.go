// verify_collision 无窗口地运行打砖块并输出碰撞统计
//
// 用法:
//
//	go run ./cmd/verify_collision [--frames 36000] [--dt 0.0166667] [--autopilot=false] [--verbose]
//
// 挡板由自动驾驶跟随球移动；每帧检查球的水平位置与砖块计数的不变式，
// 任何违反都会打印并以非零状态退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"sort"

	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/game"
	"github.com/decker502/breakout/pkg/systems"
)

var (
	frames     = flag.Int("frames", 36000, "Number of frames to simulate")
	dt         = flag.Float64("dt", 1.0/60.0, "Frame time in seconds")
	autopilot  = flag.Bool("autopilot", true, "Move the paddle under the ball")
	configPath = flag.String("config", "", "Path to breakout.yaml (defaults to data/breakout.yaml if present)")
	verbose    = flag.Bool("verbose", false, "Show detailed logs")
)

// Report 模拟结果
type Report struct {
	Frames     int
	Outcomes   map[systems.FrameOutcome]int
	Bricks     int
	RoundsLost int
	ClearedAt  int // 清空所有砖块的帧号，未清空为 -1
	Violations []string
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	path := *configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultBreakoutConfigPath); err == nil {
			path = config.DefaultBreakoutConfigPath
		}
	}
	cfg, err := config.ResolveBreakoutConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verify_collision: %v\n", err)
		os.Exit(1)
	}

	sprites, err := game.NewHeadlessResourceManager().LoadSpriteSet(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verify_collision: %v\n", err)
		os.Exit(1)
	}

	ctx := game.NewGameContext(cfg.Viewport.Width, cfg.Viewport.Height, nil)
	world, err := systems.NewWorld(ctx, cfg, sprites)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verify_collision: %v\n", err)
		os.Exit(1)
	}

	report := simulate(world, *frames, *dt, *autopilot)
	printReport(os.Stdout, report)
	if len(report.Violations) > 0 {
		os.Exit(1)
	}
}

// simulate 运行 frames 帧并收集统计
func simulate(world *systems.World, frames int, dt float64, autopilot bool) Report {
	report := Report{
		Outcomes:  make(map[systems.FrameOutcome]int),
		ClearedAt: -1,
	}

	prevBricks := world.RemainingBricks()
	for i := 0; i < frames && !world.Cleared(); i++ {
		var input systems.Input
		if autopilot {
			input = follow(world)
		}
		outcome := world.Update(dt, input)
		report.Outcomes[outcome]++
		report.Frames++

		bricks := world.RemainingBricks()
		switch {
		case outcome == systems.FrameBrick && bricks != prevBricks-1:
			report.Violations = append(report.Violations,
				fmt.Sprintf("frame %d: brick hit removed %d bricks", i, prevBricks-bricks))
		case outcome != systems.FrameBrick && bricks != prevBricks:
			report.Violations = append(report.Violations,
				fmt.Sprintf("frame %d: %d bricks removed without a brick hit", i, prevBricks-bricks))
		}
		prevBricks = bricks

		// 碰撞在移动之前处理，球最多越过边界一帧的位移
		ball := world.Ball()
		vp := world.Context().Viewport
		slack := math.Abs(ball.Velocity.VX)*dt + 1
		if ball.X() < -slack || ball.X()+float64(ball.Width()) > float64(vp.Width)+slack {
			report.Violations = append(report.Violations,
				fmt.Sprintf("frame %d: ball escaped horizontally at x=%.2f", i, ball.X()))
		}

		if world.Cleared() {
			report.ClearedAt = i
		}
	}

	report.Bricks = world.RemainingBricks()
	report.RoundsLost = world.Round().RoundsLost
	return report
}

// follow 让挡板中心追随球心
func follow(world *systems.World) systems.Input {
	ball := world.Ball()
	paddle := world.Paddle()
	center := paddle.X() + float64(paddle.Width())/2
	const deadZone = 5
	switch {
	case ball.MidX() < center-deadZone:
		return systems.Input{Left: true}
	case ball.MidX() > center+deadZone:
		return systems.Input{Right: true}
	}
	return systems.Input{}
}

func printReport(w io.Writer, r Report) {
	fmt.Fprintf(w, "Frames simulated: %d\n", r.Frames)
	fmt.Fprintf(w, "Bricks remaining: %d\n", r.Bricks)
	fmt.Fprintf(w, "Rounds lost:      %d\n", r.RoundsLost)
	if r.ClearedAt >= 0 {
		fmt.Fprintf(w, "Cleared at frame: %d\n", r.ClearedAt)
	}

	outcomes := make([]systems.FrameOutcome, 0, len(r.Outcomes))
	for o := range r.Outcomes {
		outcomes = append(outcomes, o)
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i] < outcomes[j] })
	fmt.Fprintln(w, "Frame outcomes:")
	for _, o := range outcomes {
		fmt.Fprintf(w, "  %-10s %d\n", o, r.Outcomes[o])
	}

	if len(r.Violations) == 0 {
		fmt.Fprintln(w, "All invariants held")
		return
	}
	fmt.Fprintf(w, "%d invariant violations:\n", len(r.Violations))
	for _, v := range r.Violations {
		fmt.Fprintf(w, "  %s\n", v)
	}
}

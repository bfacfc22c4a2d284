// Package motion 提供平滑鼠标轨迹规划。
// 轨迹为二次贝塞尔曲线叠加正弦缓动，步点惰性生成，
// 最后一个步点精确落在目标位置（不会因取整误差停在目标附近）。
package motion

import (
	"math"
	"math/rand"
	"time"

	"github.com/yxoo/urmacro/pkg/macro"
)

// 每秒步数和最小步数，决定轨迹平滑度
const (
	stepsPerSecond = 120
	minSteps       = 15
)

// Plan 绝对坐标轨迹规划，一次性使用，不可重置。
// 重新规划需以当前实际位置为新起点重新创建。
type Plan struct {
	start macro.Point
	end   macro.Point

	ctrlX float64
	ctrlY float64

	steps     int
	i         int
	stepDelay time.Duration
}

// NewPlan 创建从 start 到 end、在 duration 内完成的轨迹。
// 控制点取弦中点沿法线方向偏移一个随机量，使轨迹呈自然弧线。
func NewPlan(start, end macro.Point, duration time.Duration) *Plan {
	dx := float64(end.X - start.X)
	dy := float64(end.Y - start.Y)
	dist := math.Hypot(dx, dy)

	p := &Plan{start: start, end: end}

	if dist < 2 {
		// 距离过近，单步直达
		p.steps = 1
		p.stepDelay = 0
		p.ctrlX = float64(start.X)
		p.ctrlY = float64(start.Y)
		return p
	}

	p.steps = planSteps(duration)
	p.stepDelay = duration / time.Duration(p.steps)

	deviation := (rand.Float64()*0.3 - 0.15) * dist
	p.ctrlX = (float64(start.X)+float64(end.X))/2 + (-dy/dist)*deviation
	p.ctrlY = (float64(start.Y)+float64(end.Y))/2 + (dx/dist)*deviation

	return p
}

// Next 生成下一个步点及其注入前的等待时间。
// 第三个返回值为 false 表示轨迹已结束。
func (p *Plan) Next() (macro.Point, time.Duration, bool) {
	if p.i >= p.steps {
		return macro.Point{}, 0, false
	}
	p.i++

	if p.i == p.steps {
		return p.end, p.stepDelay, true
	}

	t := float64(p.i) / float64(p.steps)
	eased := easeInOutSine(t)
	inv := 1 - eased

	bx := inv*inv*float64(p.start.X) + 2*inv*eased*p.ctrlX + eased*eased*float64(p.end.X)
	by := inv*inv*float64(p.start.Y) + 2*inv*eased*p.ctrlY + eased*eased*float64(p.end.Y)

	// 中间点加 ±1px 抖动，终点不加
	return macro.Point{
		X: int(bx) + rand.Intn(3) - 1,
		Y: int(by) + rand.Intn(3) - 1,
	}, p.stepDelay, true
}

// Steps 返回总步数
func (p *Plan) Steps() int {
	return p.steps
}

// DeltaPlan 相对位移轨迹规划，发出整数增量序列。
// 小数余量累积到后续步，保证增量之和精确等于 (dx, dy)。
type DeltaPlan struct {
	dx float64
	dy float64

	prevBx float64
	prevBy float64
	accX   float64
	accY   float64

	emittedX int
	emittedY int

	steps     int
	i         int
	stepDelay time.Duration
}

// NewDeltaPlan 创建总位移为 (dx, dy)、在 duration 内完成的相对轨迹。
// 相对移动用于游戏视角等原始输入场景，不加法线偏移和抖动。
func NewDeltaPlan(dx, dy int, duration time.Duration) *DeltaPlan {
	p := &DeltaPlan{
		dx:    float64(dx),
		dy:    float64(dy),
		steps: planSteps(duration),
	}
	if math.Hypot(p.dx, p.dy) < 2 {
		p.steps = 1
	}
	p.stepDelay = duration / time.Duration(p.steps)
	return p
}

// Next 生成下一个整数增量及其注入前的等待时间。
// 增量可能为 (0, 0)，调用方可以跳过注入但仍应等待。
func (p *DeltaPlan) Next() (stepDx, stepDy int, delay time.Duration, ok bool) {
	if p.i >= p.steps {
		return 0, 0, 0, false
	}
	p.i++

	if p.i == p.steps {
		// 最后一步补齐余量，保证总和精确
		return int(p.dx) - p.emittedX, int(p.dy) - p.emittedY, p.stepDelay, true
	}

	t := float64(p.i) / float64(p.steps)
	eased := easeInOutSine(t)
	inv := 1 - eased

	// 控制点取位移中点的二次贝塞尔（起点为原点）
	bx := 2*inv*eased*(p.dx/2) + eased*eased*p.dx
	by := 2*inv*eased*(p.dy/2) + eased*eased*p.dy

	p.accX += bx - p.prevBx
	p.accY += by - p.prevBy
	p.prevBx = bx
	p.prevBy = by

	stepDx = int(p.accX)
	stepDy = int(p.accY)
	p.accX -= float64(stepDx)
	p.accY -= float64(stepDy)
	p.emittedX += stepDx
	p.emittedY += stepDy

	return stepDx, stepDy, p.stepDelay, true
}

// Steps 返回总步数
func (p *DeltaPlan) Steps() int {
	return p.steps
}

func planSteps(duration time.Duration) int {
	steps := int(duration.Seconds() * stepsPerSecond)
	if steps < minSteps {
		steps = minSteps
	}
	return steps
}

func easeInOutSine(t float64) float64 {
	return (1 - math.Cos(t*math.Pi)) / 2
}

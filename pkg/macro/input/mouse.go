package input

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-vgo/robotgo"

	"github.com/yxoo/urmacro/pkg/macro"
	"github.com/yxoo/urmacro/pkg/macro/motion"
)

// 按钮按下到抬起之间的停顿
const clickSettleDelay = 10 * time.Millisecond

var (
	heldButtonMu sync.Mutex
	heldLeft     bool
	heldRight    bool
)

// LeftClick 左键单击
func LeftClick() {
	robotgo.Click("left", false)
}

// RightClick 右键单击
func RightClick() {
	robotgo.Click("right", false)
}

// DoubleClick 左键双击
func DoubleClick() {
	robotgo.Click("left", true)
}

// HoldLeft 按住左键不抬起，重复调用不会重复注入
func HoldLeft() {
	heldButtonMu.Lock()
	defer heldButtonMu.Unlock()

	if heldLeft {
		return
	}
	robotgo.Toggle("left", "down")
	heldLeft = true
}

// ReleaseLeft 释放按住的左键，未按住时不做任何事
func ReleaseLeft() {
	heldButtonMu.Lock()
	defer heldButtonMu.Unlock()

	if !heldLeft {
		return
	}
	robotgo.Toggle("left", "up")
	heldLeft = false
}

// HoldRight 按住右键不抬起，重复调用不会重复注入
func HoldRight() {
	heldButtonMu.Lock()
	defer heldButtonMu.Unlock()

	if heldRight {
		return
	}
	robotgo.Toggle("right", "down")
	heldRight = true
}

// ReleaseRight 释放按住的右键，未按住时不做任何事
func ReleaseRight() {
	heldButtonMu.Lock()
	defer heldButtonMu.Unlock()

	if !heldRight {
		return
	}
	robotgo.Toggle("right", "up")
	heldRight = false
}

// Move 将鼠标立即移动到屏幕坐标 (x, y)
func Move(x, y int) {
	inputX, inputY := macro.NormalizePointForInput(x, y)
	robotgo.Move(inputX, inputY)
}

// MoveRelative 按相对位移移动鼠标。
// 注入的是真实的相对输入事件，游戏视角等原始输入场景可用。
func MoveRelative(dx, dy int) {
	robotgo.MoveRelative(dx, dy)
}

// CursorPosition 获取当前鼠标位置（屏幕物理坐标）
func CursorPosition() (x, y int) {
	inputX, inputY := robotgo.Location()
	return macro.NormalizePointForScreen(inputX, inputY)
}

// SmoothMove 平滑移动鼠标到目标位置。
// relative 为 true 时 (x, y) 为相对当前位置的位移，
// 逐步注入相对事件；否则为绝对屏幕坐标，逐步注入绝对移动。
// 最后一步精确落在目标位置。
func SmoothMove(x, y int, duration time.Duration, relative bool) error {
	if duration <= 0 {
		return fmt.Errorf("无效的移动时长: %v", duration)
	}

	if relative {
		plan := motion.NewDeltaPlan(x, y, duration)
		for {
			dx, dy, delay, ok := plan.Next()
			if !ok {
				return nil
			}
			if dx != 0 || dy != 0 {
				robotgo.MoveRelative(dx, dy)
			}
			time.Sleep(delay)
		}
	}

	cx, cy := CursorPosition()
	plan := motion.NewPlan(macro.Point{X: cx, Y: cy}, macro.Point{X: x, Y: y}, duration)
	for {
		p, delay, ok := plan.Next()
		if !ok {
			return nil
		}
		Move(p.X, p.Y)
		time.Sleep(delay)
	}
}

// ClickAt 移动到指定位置后单击
func ClickAt(x, y int) {
	Move(x, y)
	time.Sleep(clickSettleDelay)
	LeftClick()
}

// Scroll 滚动
func Scroll(x, y int) {
	robotgo.Scroll(x, y)
}

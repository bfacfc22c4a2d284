// Package macro 提供宏脚本共享的基础类型和工具函数。
// 具体功能分布在子包中：input, screen, window, motion, grid, text。
package macro

import (
	"fmt"
	"time"
)

// Point 表示二维坐标点（屏幕坐标或窗口客户区坐标）
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Region 表示矩形区域，Width/Height >= 0
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Empty 判断区域是否退化（宽或高为 0）
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Center 返回区域中心点
func (r Region) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Color 表示 RGB 颜色
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Match 判断两个颜色在容差范围内是否匹配
// 三个通道的绝对差都不超过 tolerance 才算匹配
func (c Color) Match(other Color, tolerance int) bool {
	return absDiff(c.R, other.R) <= tolerance &&
		absDiff(c.G, other.G) <= tolerance &&
		absDiff(c.B, other.B) <= tolerance
}

// Hex 返回 "RRGGBB" 形式的十六进制表示
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHexColor 解析 "RRGGBB" 或 "#RRGGBB" 形式的颜色字符串
func ParseHexColor(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("无效的颜色格式: %q (期望 RRGGBB)", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("无效的颜色格式: %q: %w", s, err)
	}
	return Color{R: r, G: g, B: b}, nil
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// Sleep 休眠
func Sleep(d time.Duration) {
	time.Sleep(d)
}

// MinInt 返回最小值
func MinInt(values ...int) int {
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// MaxInt 返回最大值
func MaxInt(values ...int) int {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// DefaultPollInterval 默认轮询间隔（等待窗口等场景）
const DefaultPollInterval = 200 * time.Millisecond

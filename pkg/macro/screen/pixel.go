package screen

import (
	"fmt"

	"github.com/go-vgo/robotgo"

	"github.com/yxoo/urmacro/pkg/macro"
)

// GetPixelColor 读取指定位置的像素颜色。
// 带 WithWindow 选项时坐标为该窗口客户区的相对坐标，
// 窗口无法定位时返回 macro.ErrWindowNotFound。
func GetPixelColor(x, y int, opts ...macro.Option) (macro.Color, error) {
	o := macro.ApplyOptions(opts...)

	sx, sy, err := resolveCoords(x, y, o)
	if err != nil {
		return macro.Color{}, err
	}

	inputX, inputY := macro.NormalizePointForInput(sx, sy)
	hex := robotgo.GetPixelColor(inputX, inputY)

	c, err := macro.ParseHexColor(hex)
	if err != nil {
		return macro.Color{}, fmt.Errorf("读取像素颜色失败 (%d,%d): %w", sx, sy, err)
	}
	return c, nil
}

// CheckPixelColor 判断指定位置的像素是否与目标颜色匹配（容差比较）。
// 任何失败（窗口未找到、取色失败）都返回 false，方便轮询循环直接使用。
func CheckPixelColor(x, y int, target macro.Color, opts ...macro.Option) bool {
	o := macro.ApplyOptions(opts...)

	c, err := GetPixelColor(x, y, opts...)
	if err != nil {
		return false
	}
	return c.Match(target, o.Tolerance)
}

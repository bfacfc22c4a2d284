// Package screen 提供屏幕截图、像素取色和颜色扫描功能
package screen

import (
	"fmt"
	"image"

	"github.com/go-vgo/robotgo"

	"github.com/yxoo/urmacro/pkg/macro"
	"github.com/yxoo/urmacro/pkg/macro/window"
)

// CaptureScreen 截取全屏
func CaptureScreen() (image.Image, error) {
	img, err := robotgo.CaptureImg()
	if err != nil {
		return nil, fmt.Errorf("截屏失败: %w", err)
	}
	return img, nil
}

// CaptureRegion 截取屏幕区域。
// 带 WithWindow 选项时 (x, y) 为该窗口客户区的相对坐标。
// 区域会被裁剪到屏幕范围内，完全在屏幕外时返回错误。
func CaptureRegion(x, y, width, height int, opts ...macro.Option) (image.Image, error) {
	o := macro.ApplyOptions(opts...)

	sx, sy, err := resolveCoords(x, y, o)
	if err != nil {
		return nil, err
	}

	region, ok := ClipToScreen(macro.Region{X: sx, Y: sy, Width: width, Height: height})
	if !ok {
		return nil, fmt.Errorf("截取区域在屏幕外: (%d,%d %dx%d)", sx, sy, width, height)
	}

	inputX, inputY, inputW, inputH := macro.NormalizeRegionForInput(region.X, region.Y, region.Width, region.Height)
	img, err := robotgo.CaptureImg(inputX, inputY, inputW, inputH)
	if err != nil {
		return nil, fmt.Errorf("截取区域失败: %w", err)
	}
	return img, nil
}

// CaptureWindow 截取窗口整体区域
func CaptureWindow(title string) (image.Image, error) {
	w, err := window.Find(title, true)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("%w: %q", macro.ErrWindowNotFound, title)
	}
	b := w.Bounds
	return CaptureRegion(b.X, b.Y, b.Width, b.Height)
}

// ScreenSize 获取主屏幕尺寸（物理像素，与截图分辨率一致）
func ScreenSize() (width, height int) {
	return macro.GetPhysicalScreenSize()
}

// DisplayCount 获取显示器数量
func DisplayCount() int {
	return robotgo.DisplaysNum()
}

// ClipToScreen 将区域裁剪到屏幕可见范围。
// 返回 false 表示裁剪后区域为空（完全在屏幕外或宽高为 0）。
func ClipToScreen(r macro.Region) (macro.Region, bool) {
	if r.Empty() {
		return macro.Region{}, false
	}

	sw, sh := ScreenSize()

	x1 := macro.MaxInt(r.X, 0)
	y1 := macro.MaxInt(r.Y, 0)
	x2 := macro.MinInt(r.X+r.Width, sw)
	y2 := macro.MinInt(r.Y+r.Height, sh)

	if x2 <= x1 || y2 <= y1 {
		return macro.Region{}, false
	}

	return macro.Region{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}, true
}

// resolveCoords 将窗口客户区相对坐标转换为屏幕绝对坐标。
// 未指定窗口时原样返回；窗口无法定位时返回 macro.ErrWindowNotFound。
func resolveCoords(x, y int, o *macro.Options) (int, int, error) {
	if o.WindowTitle == "" {
		return x, y, nil
	}

	origin, err := window.ClientOrigin(o.WindowTitle)
	if err != nil {
		return 0, 0, err
	}
	return origin.X + x, origin.Y + y, nil
}

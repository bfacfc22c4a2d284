package screen

import (
	"errors"
	"image"
	"time"

	"github.com/yxoo/urmacro/internal/logger"
	"github.com/yxoo/urmacro/pkg/macro"
)

// ScanImage 在图像中按行优先顺序（从上到下、从左到右）扫描
// 第一个与目标颜色匹配的像素，返回相对图像左上角的坐标。
// 没有匹配返回 nil。对固定的图像结果完全确定。
func ScanImage(img image.Image, target macro.Color, tolerance int) *macro.Point {
	return ScanImageStrided(img, target, tolerance, false, 1, 1)
}

// ScanImageStrided 按指定方向和步长扫描图像中第一个匹配的像素。
// fromEnd 为 true 时从右下角往左上角反向扫描；
// stepX/stepY 为像素步长（< 1 时按 1 处理），大于 1 时跳像素扫描，
// 可能错过尺寸小于步长的色块。坐标相对图像左上角。
func ScanImageStrided(img image.Image, target macro.Color, tolerance int, fromEnd bool, stepX, stepY int) *macro.Point {
	if img == nil {
		return nil
	}
	if stepX < 1 {
		stepX = 1
	}
	if stepY < 1 {
		stepY = 1
	}

	bounds := img.Bounds()

	if fromEnd {
		for py := bounds.Max.Y - 1; py >= bounds.Min.Y; py -= stepY {
			for px := bounds.Max.X - 1; px >= bounds.Min.X; px -= stepX {
				if pixelAt(img, px, py).Match(target, tolerance) {
					return &macro.Point{X: px - bounds.Min.X, Y: py - bounds.Min.Y}
				}
			}
		}
		return nil
	}

	for py := bounds.Min.Y; py < bounds.Max.Y; py += stepY {
		for px := bounds.Min.X; px < bounds.Max.X; px += stepX {
			if pixelAt(img, px, py).Match(target, tolerance) {
				return &macro.Point{X: px - bounds.Min.X, Y: py - bounds.Min.Y}
			}
		}
	}
	return nil
}

// BoundsInImage 计算图像中所有与种子颜色匹配的像素的最小包围矩形，
// 坐标相对图像左上角。单次全图扫描，不回访已处理像素，必然终止。
// 没有匹配返回 nil。
func BoundsInImage(img image.Image, seed macro.Color, tolerance int) *macro.Region {
	if img == nil {
		return nil
	}

	bounds := img.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X-1, bounds.Min.Y-1

	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			if !pixelAt(img, px, py).Match(seed, tolerance) {
				continue
			}
			if px < minX {
				minX = px
			}
			if py < minY {
				minY = py
			}
			if px > maxX {
				maxX = px
			}
			if py > maxY {
				maxY = py
			}
		}
	}

	if maxX < bounds.Min.X {
		return nil
	}

	return &macro.Region{
		X:      minX - bounds.Min.X,
		Y:      minY - bounds.Min.Y,
		Width:  maxX - minX + 1,
		Height: maxY - minY + 1,
	}
}

// FindColor 在屏幕区域内查找目标颜色，返回第一个匹配像素的坐标
// （与传入区域同一坐标空间：屏幕坐标，或 WithWindow 时的客户区坐标）。
// WithScanFromEnd / WithScanStep 控制扫描方向和步长。
// 没有匹配或区域完全在屏幕外返回 (nil, nil)，不视为错误。
func FindColor(region macro.Region, target macro.Color, opts ...macro.Option) (*macro.Point, error) {
	o := macro.ApplyOptions(opts...)
	start := time.Now()

	if region.Empty() {
		return nil, nil
	}

	sx, sy, err := resolveCoords(region.X, region.Y, o)
	if err != nil {
		return nil, err
	}

	clipped, ok := ClipToScreen(macro.Region{X: sx, Y: sy, Width: region.Width, Height: region.Height})
	if !ok {
		return nil, nil
	}

	img, err := CaptureRegion(clipped.X, clipped.Y, clipped.Width, clipped.Height)
	if err != nil {
		return nil, err
	}

	found := ScanImageStrided(img, target, o.Tolerance, o.ScanFromEnd, o.ScanStepX, o.ScanStepY)
	elapsed := float64(time.Since(start).Milliseconds())
	if found == nil {
		logger.Debug("颜色扫描: %s 未命中 (%.1fms)", target.Hex(), elapsed)
		return nil, nil
	}

	// 截图像素 → 区域坐标：裁剪偏移 + DPI 缩放还原 + 回到调用方坐标空间
	p := adjustToCaller(*found, img, clipped, region, sx, sy)
	logger.Debug("颜色扫描: %s 命中 (%d,%d) (%.1fms)", target.Hex(), p.X, p.Y, elapsed)
	return &p, nil
}

// FindColorBounds 在屏幕区域内查找与参考点颜色相同的色块包围矩形。
// 参考点 (refX, refY) 与区域在同一坐标空间。
// 参考点取色失败或区域内没有匹配像素时返回 (nil, nil)。
func FindColorBounds(region macro.Region, refX, refY int, opts ...macro.Option) (*macro.Region, error) {
	o := macro.ApplyOptions(opts...)

	if region.Empty() {
		return nil, nil
	}

	seed, err := GetPixelColor(refX, refY, opts...)
	if err != nil {
		if errors.Is(err, macro.ErrWindowNotFound) {
			return nil, err
		}
		return nil, nil
	}

	sx, sy, err := resolveCoords(region.X, region.Y, o)
	if err != nil {
		return nil, err
	}

	clipped, ok := ClipToScreen(macro.Region{X: sx, Y: sy, Width: region.Width, Height: region.Height})
	if !ok {
		return nil, nil
	}

	img, err := CaptureRegion(clipped.X, clipped.Y, clipped.Width, clipped.Height)
	if err != nil {
		return nil, err
	}

	b := BoundsInImage(img, seed, o.Tolerance)
	if b == nil {
		return nil, nil
	}

	topLeft := adjustToCaller(macro.Point{X: b.X, Y: b.Y}, img, clipped, region, sx, sy)
	bottomRight := adjustToCaller(macro.Point{X: b.X + b.Width - 1, Y: b.Y + b.Height - 1}, img, clipped, region, sx, sy)

	return &macro.Region{
		X:      topLeft.X,
		Y:      topLeft.Y,
		Width:  bottomRight.X - topLeft.X + 1,
		Height: bottomRight.Y - topLeft.Y + 1,
	}, nil
}

// adjustToCaller 将截图内像素坐标换算回调用方坐标空间。
// 截图分辨率可能与请求区域尺寸不同（DPI 缩放），先按比例还原，
// 再加上裁剪偏移，最后换回窗口相对 / 屏幕坐标。
func adjustToCaller(p macro.Point, img image.Image, clipped, requested macro.Region, absX, absY int) macro.Point {
	imgW := img.Bounds().Dx()
	imgH := img.Bounds().Dy()

	x := p.X
	y := p.Y
	if clipped.Width > 0 && imgW > 0 && imgW != clipped.Width {
		x = macro.ScaleInt(p.X, float64(clipped.Width)/float64(imgW))
	}
	if clipped.Height > 0 && imgH > 0 && imgH != clipped.Height {
		y = macro.ScaleInt(p.Y, float64(clipped.Height)/float64(imgH))
	}

	// 屏幕绝对坐标
	screenX := clipped.X + x
	screenY := clipped.Y + y

	// 换回调用方空间：requested 的原点对应屏幕上的 (absX, absY)
	return macro.Point{
		X: requested.X + (screenX - absX),
		Y: requested.Y + (screenY - absY),
	}
}

// pixelAt 读取图像指定位置的 RGB 值
func pixelAt(img image.Image, x, y int) macro.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return macro.Color{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

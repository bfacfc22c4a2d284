package screen

import (
	"image"
	"image/color"
	"testing"

	"github.com/yxoo/urmacro/pkg/macro"
)

// makeImage 构造纯色背景的测试图像
func makeImage(w, h int, bg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, bg)
		}
	}
	return img
}

func TestScanImageFirstMatchRowMajor(t *testing.T) {
	img := makeImage(10, 10, color.RGBA{R: 0, G: 0, B: 0, A: 255})
	red := color.RGBA{R: 255, G: 0, B: 0, A: 255}

	// 行优先顺序下 (3, 2) 先于 (1, 5) 被扫到
	img.SetRGBA(3, 2, red)
	img.SetRGBA(1, 5, red)

	p := ScanImage(img, macro.Color{R: 255, G: 0, B: 0}, 0)
	if p == nil {
		t.Fatal("应找到匹配像素")
	}
	if p.X != 3 || p.Y != 2 {
		t.Errorf("应返回行优先顺序的第一个匹配: (%d, %d), 期望 (3, 2)", p.X, p.Y)
	}
}

func TestScanImageAllMatching(t *testing.T) {
	img := makeImage(10, 10, color.RGBA{R: 30, G: 60, B: 90, A: 255})

	p := ScanImage(img, macro.Color{R: 30, G: 60, B: 90}, 0)
	if p == nil {
		t.Fatal("应找到匹配像素")
	}
	if p.X != 0 || p.Y != 0 {
		t.Errorf("全图匹配应返回左上角 (0, 0), 实际为 (%d, %d)", p.X, p.Y)
	}
}

func TestScanImageNoMatch(t *testing.T) {
	img := makeImage(10, 10, color.RGBA{R: 0, G: 0, B: 0, A: 255})

	p := ScanImage(img, macro.Color{R: 255, G: 0, B: 0}, 0)
	if p != nil {
		t.Errorf("没有匹配像素时应返回 nil, 实际为 %+v", p)
	}
}

func TestScanImageTolerance(t *testing.T) {
	img := makeImage(5, 5, color.RGBA{R: 0, G: 0, B: 0, A: 255})
	img.SetRGBA(2, 2, color.RGBA{R: 105, G: 95, B: 100, A: 255})

	target := macro.Color{R: 100, G: 100, B: 100}

	if p := ScanImage(img, target, 5); p == nil {
		t.Error("容差 5 时应匹配 (每通道差 5)")
	}
	if p := ScanImage(img, target, 4); p != nil {
		t.Error("容差 4 时不应匹配")
	}
}

func TestScanImageOffsetBounds(t *testing.T) {
	// 图像 bounds 不从 (0, 0) 开始时坐标仍应相对左上角
	img := image.NewRGBA(image.Rect(10, 20, 20, 30))
	for y := 20; y < 30; y++ {
		for x := 10; x < 20; x++ {
			img.SetRGBA(x, y, color.RGBA{A: 255})
		}
	}
	img.SetRGBA(13, 24, color.RGBA{R: 255, A: 255})

	p := ScanImage(img, macro.Color{R: 255}, 0)
	if p == nil {
		t.Fatal("应找到匹配像素")
	}
	if p.X != 3 || p.Y != 4 {
		t.Errorf("坐标应相对图像左上角: (%d, %d), 期望 (3, 4)", p.X, p.Y)
	}
}

func TestScanImageStridedFromEnd(t *testing.T) {
	img := makeImage(10, 10, color.RGBA{A: 255})
	red := color.RGBA{R: 255, A: 255}

	img.SetRGBA(3, 2, red)
	img.SetRGBA(1, 5, red)

	// 反向扫描时行优先顺序中靠后的 (1, 5) 先被扫到
	p := ScanImageStrided(img, macro.Color{R: 255}, 0, true, 1, 1)
	if p == nil {
		t.Fatal("应找到匹配像素")
	}
	if p.X != 1 || p.Y != 5 {
		t.Errorf("反向扫描应返回最后一个匹配: (%d, %d), 期望 (1, 5)", p.X, p.Y)
	}
}

func TestScanImageStridedStep(t *testing.T) {
	img := makeImage(10, 10, color.RGBA{A: 255})
	red := color.RGBA{R: 255, A: 255}
	target := macro.Color{R: 255}

	// 步长 2 只访问偶数坐标，奇数列上的单像素会被跳过
	img.SetRGBA(3, 4, red)
	if p := ScanImageStrided(img, target, 0, false, 2, 2); p != nil {
		t.Errorf("步长 2 不应命中 (3, 4), 实际为 %+v", p)
	}

	img.SetRGBA(6, 4, red)
	p := ScanImageStrided(img, target, 0, false, 2, 2)
	if p == nil {
		t.Fatal("步长 2 应命中 (6, 4)")
	}
	if p.X != 6 || p.Y != 4 {
		t.Errorf("命中坐标应为 (6, 4), 实际为 (%d, %d)", p.X, p.Y)
	}
}

func TestScanImageStridedInvalidStep(t *testing.T) {
	img := makeImage(5, 5, color.RGBA{A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 255, A: 255})

	// 非法步长按 1 处理
	p := ScanImageStrided(img, macro.Color{R: 255}, 0, false, 0, -3)
	if p == nil || p.X != 1 || p.Y != 1 {
		t.Errorf("步长 < 1 应按 1 处理, 实际为 %+v", p)
	}
}

func TestScanImageNil(t *testing.T) {
	if p := ScanImage(nil, macro.Color{}, 0); p != nil {
		t.Error("nil 图像应返回 nil")
	}
}

func TestBoundsInImage(t *testing.T) {
	img := makeImage(20, 20, color.RGBA{A: 255})
	red := color.RGBA{R: 255, A: 255}

	// 两个分离的红色块，包围矩形应覆盖两者
	img.SetRGBA(5, 3, red)
	img.SetRGBA(6, 3, red)
	img.SetRGBA(12, 9, red)

	b := BoundsInImage(img, macro.Color{R: 255}, 0)
	if b == nil {
		t.Fatal("应找到匹配区域")
	}
	if b.X != 5 || b.Y != 3 {
		t.Errorf("左上角应为 (5, 3), 实际为 (%d, %d)", b.X, b.Y)
	}
	if b.Width != 8 || b.Height != 7 {
		t.Errorf("尺寸应为 8x7, 实际为 %dx%d", b.Width, b.Height)
	}
}

func TestBoundsInImageSinglePixel(t *testing.T) {
	img := makeImage(10, 10, color.RGBA{A: 255})
	img.SetRGBA(4, 6, color.RGBA{R: 255, A: 255})

	b := BoundsInImage(img, macro.Color{R: 255}, 0)
	if b == nil {
		t.Fatal("应找到匹配区域")
	}
	if b.X != 4 || b.Y != 6 || b.Width != 1 || b.Height != 1 {
		t.Errorf("单像素包围矩形应为 {4 6 1 1}, 实际为 %+v", b)
	}
}

func TestBoundsInImageNoMatch(t *testing.T) {
	img := makeImage(10, 10, color.RGBA{A: 255})

	b := BoundsInImage(img, macro.Color{R: 255}, 0)
	if b != nil {
		t.Errorf("没有匹配像素时应返回 nil, 实际为 %+v", b)
	}
}

func TestBoundsInImageFullImage(t *testing.T) {
	img := makeImage(8, 6, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	b := BoundsInImage(img, macro.Color{R: 10, G: 20, B: 30}, 0)
	if b == nil {
		t.Fatal("应找到匹配区域")
	}
	if b.X != 0 || b.Y != 0 || b.Width != 8 || b.Height != 6 {
		t.Errorf("全图匹配应为 {0 0 8 6}, 实际为 %+v", b)
	}
}

func TestFindColorEmptyRegion(t *testing.T) {
	p, err := FindColor(macro.Region{}, macro.Color{R: 255})
	if err != nil {
		t.Errorf("退化区域不应报错: %v", err)
	}
	if p != nil {
		t.Errorf("退化区域应返回 nil, 实际为 %+v", p)
	}
}

func TestFindColorBoundsEmptyRegion(t *testing.T) {
	r, err := FindColorBounds(macro.Region{}, 0, 0)
	if err != nil {
		t.Errorf("退化区域不应报错: %v", err)
	}
	if r != nil {
		t.Errorf("退化区域应返回 nil, 实际为 %+v", r)
	}
}

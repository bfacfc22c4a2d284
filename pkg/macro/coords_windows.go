//go:build windows

package macro

import (
	"math"
	"sync"
	"syscall"

	"github.com/go-vgo/robotgo"

	"github.com/yxoo/urmacro/internal/logger"
)

// =====================================================================
// Windows 坐标空间说明
// =====================================================================
//
// 宏脚本涉及三个坐标空间：
//   1. 物理像素: 截图的实际像素，颜色扫描结果在此空间
//   2. 逻辑坐标: Windows 逻辑像素 = 物理 / DPI_scale
//   3. 注入坐标: robotgo.Move/Click 期望的坐标
//
// 在 DPI Aware 进程中 robotgo 的 GetScreenSize / Move 使用哪个空间
// 依版本和环境而异，因此不做假设，初始化时通过对比截图尺寸与
// GetScreenSize() 的返回值自动探测：
//
//   coordScale = 截图像素尺寸 / robotgo 输入坐标空间尺寸
//
// NormalizePointForInput:  截图坐标 → 注入坐标 = x / coordScale
// NormalizePointForScreen: 注入坐标 → 截图坐标 = x * coordScale
// =====================================================================

var (
	coordScaleMu   sync.Mutex
	cachedScaleX   float64
	cachedScaleY   float64
	coordsDetected bool
	coordsLogOnce  sync.Once
)

var (
	user32DPI = syscall.NewLazyDLL("user32.dll")
	gdi32DPI  = syscall.NewLazyDLL("gdi32.dll")
	shcoreDPI = syscall.NewLazyDLL("shcore.dll")

	procGetDpiForWindow          = user32DPI.NewProc("GetDpiForWindow")
	procGetDeviceCaps            = gdi32DPI.NewProc("GetDeviceCaps")
	procGetDC                    = user32DPI.NewProc("GetDC")
	procReleaseDC                = user32DPI.NewProc("ReleaseDC")
	procGetForegroundWindowDPI   = user32DPI.NewProc("GetForegroundWindow")
	procGetDesktopWindow         = user32DPI.NewProc("GetDesktopWindow")
	procSetProcessDpiAwareCtx    = user32DPI.NewProc("SetProcessDpiAwarenessContext")
	procSetProcessDpiAwareness   = shcoreDPI.NewProc("SetProcessDpiAwareness")
	procSetProcessDPIAwareLegacy = user32DPI.NewProc("SetProcessDPIAware")

	cachedDPIScale float64
)

const logpixelsX = 88

// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 = (HANDLE)(-4)
var dpiAwarenessPerMonitorV2 = ^uintptr(3)

// EnableDPIAwareness 将当前进程设为 DPI Aware，
// 使 Windows 返回真实的物理分辨率而不是缩放后的虚拟分辨率。
// 按 PerMonitorV2 → PerMonitor → 系统级 的顺序逐级降级。
func EnableDPIAwareness() {
	if procSetProcessDpiAwareCtx.Find() == nil {
		r, _, _ := procSetProcessDpiAwareCtx.Call(dpiAwarenessPerMonitorV2)
		if r != 0 {
			return
		}
	}
	if procSetProcessDpiAwareness.Find() == nil {
		// PROCESS_PER_MONITOR_DPI_AWARE = 2
		r, _, _ := procSetProcessDpiAwareness.Call(2)
		if r == 0 {
			return
		}
	}
	if procSetProcessDPIAwareLegacy.Find() == nil {
		procSetProcessDPIAwareLegacy.Call()
	}
}

// GetDPIScale 获取 Windows DPI 缩放比例
// 1.0 = 100%, 1.25 = 125%, 1.5 = 150%, 2.0 = 200%
func GetDPIScale() float64 {
	if cachedDPIScale > 0 {
		return cachedDPIScale
	}

	var dpi int

	// 方法1: GetDpiForWindow (Windows 10 1607+)
	if procGetDpiForWindow.Find() == nil {
		hwnd, _, _ := procGetForegroundWindowDPI.Call()
		if hwnd == 0 {
			hwnd, _, _ = procGetDesktopWindow.Call()
		}
		if hwnd != 0 {
			d, _, _ := procGetDpiForWindow.Call(hwnd)
			if d > 0 {
				dpi = int(d)
			}
		}
	}

	// 方法2: GDI GetDeviceCaps
	if dpi == 0 && procGetDC.Find() == nil && procGetDeviceCaps.Find() == nil {
		dc, _, _ := procGetDC.Call(0)
		if dc != 0 {
			d, _, _ := procGetDeviceCaps.Call(dc, uintptr(logpixelsX))
			if d > 0 {
				dpi = int(d)
			}
			procReleaseDC.Call(0, dc)
		}
	}

	if dpi <= 0 {
		dpi = 96
	}

	scale := float64(dpi) / 96.0
	if scale < 0.5 || scale > 4.0 {
		scale = 1.0
	}

	cachedDPIScale = scale
	return scale
}

// GetPhysicalScreenSize 获取物理屏幕尺寸（与截图分辨率一致）
func GetPhysicalScreenSize() (width, height int) {
	w, h := robotgo.GetScreenSize()
	scaleX, scaleY := getCoordinateScale()
	return ScaleInt(w, scaleX), ScaleInt(h, scaleY)
}

// getCoordinateScale 获取 截图像素 → robotgo 输入坐标 之间的缩放比
func getCoordinateScale() (float64, float64) {
	coordScaleMu.Lock()
	defer coordScaleMu.Unlock()

	if coordsDetected {
		return cachedScaleX, cachedScaleY
	}

	cachedScaleX, cachedScaleY = detectCoordinateScale()
	coordsDetected = true

	coordsLogOnce.Do(func() {
		rw, rh := robotgo.GetScreenSize()
		logger.Debug("坐标空间探测: DPI=%.0f%% robotgo_screen=%dx%d coordScale=%.3f",
			GetDPIScale()*100, rw, rh, cachedScaleX)
	})

	return cachedScaleX, cachedScaleY
}

func detectCoordinateScale() (float64, float64) {
	reportedW, reportedH := robotgo.GetScreenSize()
	if reportedW <= 0 || reportedH <= 0 {
		return 1.0, 1.0
	}

	img, err := robotgo.CaptureImg()
	if err != nil || img == nil {
		// 截图失败，用 DPI scale 兜底
		s := GetDPIScale()
		return s, s
	}

	captureW := img.Bounds().Dx()
	captureH := img.Bounds().Dy()
	if captureW <= 0 || captureH <= 0 {
		return 1.0, 1.0
	}

	// 截图明显大于 GetScreenSize ⇒ GetScreenSize 返回逻辑尺寸，
	// robotgo.Move 期望逻辑坐标，coordScale = 截图/逻辑。
	// 两者一致 ⇒ 同一空间，coordScale = 1.0。
	return normalizeScale(float64(captureW) / float64(reportedW)),
		normalizeScale(float64(captureH) / float64(reportedH))
}

func normalizeScale(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 1.0
	}
	if v < 0.5 || v > 4.0 {
		return 1.0
	}
	if math.Abs(v-1.0) < 0.05 {
		return 1.0
	}
	return v
}

// ResetCoordinateScaleCache 重置坐标缩放缓存（分辨率或 DPI 变化后调用）
func ResetCoordinateScaleCache() {
	coordScaleMu.Lock()
	defer coordScaleMu.Unlock()
	cachedScaleX = 0
	cachedScaleY = 0
	coordsDetected = false
	cachedDPIScale = 0
}

// NormalizePointForInput 将截图物理坐标转换为 robotgo 输入坐标
func NormalizePointForInput(x, y int) (int, int) {
	scaleX, scaleY := getCoordinateScale()
	if scaleX <= 0 {
		scaleX = 1.0
	}
	if scaleY <= 0 {
		scaleY = 1.0
	}
	return ScaleInt(x, 1.0/scaleX), ScaleInt(y, 1.0/scaleY)
}

// NormalizePointForScreen 将 robotgo 坐标转换为截图物理坐标
func NormalizePointForScreen(x, y int) (int, int) {
	scaleX, scaleY := getCoordinateScale()
	return ScaleInt(x, scaleX), ScaleInt(y, scaleY)
}

// NormalizeRegionForInput 将截图物理区域转换为 robotgo 输入区域
func NormalizeRegionForInput(x, y, width, height int) (int, int, int, int) {
	scaleX, scaleY := getCoordinateScale()
	if scaleX <= 0 {
		scaleX = 1.0
	}
	if scaleY <= 0 {
		scaleY = 1.0
	}

	nx := ScaleInt(x, 1.0/scaleX)
	ny := ScaleInt(y, 1.0/scaleY)
	nw := ScaleInt(width, 1.0/scaleX)
	nh := ScaleInt(height, 1.0/scaleY)

	if width > 0 && nw < 1 {
		nw = 1
	}
	if height > 0 && nh < 1 {
		nh = 1
	}

	return nx, ny, nw, nh
}

// NormalizeRegionForScreen 将 robotgo 区域转换为截图物理区域
func NormalizeRegionForScreen(x, y, width, height int) (int, int, int, int) {
	scaleX, scaleY := getCoordinateScale()
	return ScaleInt(x, scaleX), ScaleInt(y, scaleY), ScaleInt(width, scaleX), ScaleInt(height, scaleY)
}

// ScaleInt 缩放整数值
func ScaleInt(value int, factor float64) int {
	if factor <= 0 {
		return value
	}
	return int(math.Round(float64(value) * factor))
}

//go:build windows

package window

import (
	"fmt"
	"strings"
	"sync"
	"syscall"
	"unsafe"

	"github.com/yxoo/urmacro/pkg/macro"
)

var (
	user32   = syscall.NewLazyDLL("user32.dll")
	kernel32 = syscall.NewLazyDLL("kernel32.dll")
	psapi    = syscall.NewLazyDLL("psapi.dll")

	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW     = user32.NewProc("GetWindowTextLengthW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procGetClientRect            = user32.NewProc("GetClientRect")
	procClientToScreen           = user32.NewProc("ClientToScreen")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procIsIconic                 = user32.NewProc("IsIconic")
	procGetWindowLongW           = user32.NewProc("GetWindowLongW")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procShowWindow               = user32.NewProc("ShowWindow")
	procBringWindowToTop         = user32.NewProc("BringWindowToTop")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procAttachThreadInput        = user32.NewProc("AttachThreadInput")
	procGetCurrentThreadId       = kernel32.NewProc("GetCurrentThreadId")
	procOpenProcess              = kernel32.NewProc("OpenProcess")
	procCloseHandle              = kernel32.NewProc("CloseHandle")
	procGetModuleBaseNameW       = psapi.NewProc("GetModuleBaseNameW")
)

const (
	gwlStyle   = ^uintptr(15) // -16
	gwlExStyle = ^uintptr(19) // -20

	wsVisible      uintptr = 0x10000000
	wsExToolWindow uintptr = 0x00000080
	wsExAppWindow  uintptr = 0x00040000

	processQueryInformation = 0x0400
	processVMRead           = 0x0010

	swRestore  = 9
	swMaximize = 3
)

// rect Windows RECT 结构
type rect struct {
	Left, Top, Right, Bottom int32
}

// point Windows POINT 结构
type point struct {
	X, Y int32
}

// 枚举状态。syscall.NewCallback 的回调槽位数量有限且永不回收，
// 轮询场景（WaitFor 等）每次枚举都注册新回调会在约 2000 次后耗尽，
// 因此回调只在包加载时注册一次，枚举状态用互斥锁串行化。
var (
	enumMu      sync.Mutex
	enumFilter  string
	enumWindows []Info
)

var enumCallback = syscall.NewCallback(func(hwnd syscall.Handle, _ uintptr) uintptr {
	ret, _, _ := procIsWindowVisible.Call(uintptr(hwnd))
	if ret == 0 {
		return 1
	}

	style, _, _ := procGetWindowLongW.Call(uintptr(hwnd), gwlStyle)
	exStyle, _, _ := procGetWindowLongW.Call(uintptr(hwnd), gwlExStyle)

	if style&wsVisible == 0 {
		return 1
	}
	// 工具窗口（浮动工具栏等）不算应用窗口
	if exStyle&wsExToolWindow != 0 && exStyle&wsExAppWindow == 0 {
		return 1
	}

	length, _, _ := procGetWindowTextLengthW.Call(uintptr(hwnd))
	if length == 0 {
		return 1
	}

	buf := make([]uint16, length+1)
	procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(length+1))
	title := syscall.UTF16ToString(buf)
	if title == "" {
		return 1
	}

	var pid uint32
	procGetWindowThreadProcessId.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&pid)))
	if pid == 0 {
		return 1
	}

	ownerName := getProcessName(pid)

	if enumFilter != "" {
		titleLower := strings.ToLower(title)
		ownerLower := strings.ToLower(ownerName)
		if !strings.Contains(titleLower, enumFilter) && !strings.Contains(ownerLower, enumFilter) {
			return 1
		}
	}

	var r rect
	procGetWindowRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&r)))

	enumWindows = append(enumWindows, Info{
		PID:       int(pid),
		Title:     title,
		OwnerName: ownerName,
		Bounds: macro.Region{
			X:      int(r.Left),
			Y:      int(r.Top),
			Width:  int(r.Right - r.Left),
			Height: int(r.Bottom - r.Top),
		},
		handle: uintptr(hwnd),
	})
	return 1
})

// listPlatform 用原生 EnumWindows 枚举可见的顶层窗口
func listPlatform(filter string) ([]Info, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumFilter = strings.ToLower(filter)
	enumWindows = enumWindows[:0]

	procEnumWindows.Call(enumCallback, 0)

	windows := make([]Info, len(enumWindows))
	copy(windows, enumWindows)
	return windows, nil
}

// getProcessName 通过 PID 获取进程名称（去掉 .exe 后缀）
func getProcessName(pid uint32) string {
	handle, _, _ := procOpenProcess.Call(
		uintptr(processQueryInformation|processVMRead),
		0,
		uintptr(pid),
	)
	if handle == 0 {
		return ""
	}
	defer procCloseHandle.Call(handle)

	buf := make([]uint16, 260)
	ret, _, _ := procGetModuleBaseNameW.Call(
		handle,
		0,
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if ret == 0 {
		return ""
	}

	name := syscall.UTF16ToString(buf)
	if strings.HasSuffix(strings.ToLower(name), ".exe") {
		name = name[:len(name)-4]
	}
	return name
}

// focusPlatform 激活窗口。
// 前台窗口属于其他线程时 SetForegroundWindow 会被系统拒绝，
// 需要先 AttachThreadInput 挂接到前台线程和目标线程。
func focusPlatform(w *Info, fullScale bool) error {
	hwnd := w.handle
	if hwnd == 0 {
		return fmt.Errorf("%w: %q", macro.ErrWindowNotFound, w.Title)
	}

	foregroundHwnd, _, _ := procGetForegroundWindow.Call()
	var foregroundThreadID uintptr
	if foregroundHwnd != 0 {
		foregroundThreadID, _, _ = procGetWindowThreadProcessId.Call(foregroundHwnd, 0)
	}

	currentThreadID, _, _ := procGetCurrentThreadId.Call()
	targetThreadID, _, _ := procGetWindowThreadProcessId.Call(hwnd, 0)

	if foregroundThreadID != 0 && foregroundThreadID != currentThreadID {
		procAttachThreadInput.Call(currentThreadID, foregroundThreadID, 1)
		defer procAttachThreadInput.Call(currentThreadID, foregroundThreadID, 0)
	}
	if targetThreadID != 0 && targetThreadID != currentThreadID {
		procAttachThreadInput.Call(currentThreadID, targetThreadID, 1)
		defer procAttachThreadInput.Call(currentThreadID, targetThreadID, 0)
	}

	if fullScale {
		procShowWindow.Call(hwnd, swMaximize)
	} else if iconic, _, _ := procIsIconic.Call(hwnd); iconic != 0 {
		procShowWindow.Call(hwnd, swRestore)
	}

	procBringWindowToTop.Call(hwnd)

	ret, _, _ := procSetForegroundWindow.Call(hwnd)
	if ret == 0 {
		return fmt.Errorf("SetForegroundWindow 失败: %s", w.Title)
	}
	return nil
}

// clientOriginPlatform 获取客户区原点的屏幕坐标
func clientOriginPlatform(w *Info) (macro.Point, error) {
	hwnd := w.handle
	if hwnd == 0 {
		return macro.Point{}, fmt.Errorf("%w: %q", macro.ErrWindowNotFound, w.Title)
	}

	var p point
	ret, _, _ := procClientToScreen.Call(hwnd, uintptr(unsafe.Pointer(&p)))
	if ret == 0 {
		return macro.Point{}, fmt.Errorf("ClientToScreen 失败: %s", w.Title)
	}
	return macro.Point{X: int(p.X), Y: int(p.Y)}, nil
}

// clientRegionPlatform 获取窗口客户区在屏幕上的区域
func clientRegionPlatform(w *Info) (*macro.Region, error) {
	origin, err := clientOriginPlatform(w)
	if err != nil {
		return nil, err
	}

	var r rect
	ret, _, _ := procGetClientRect.Call(w.handle, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return nil, fmt.Errorf("GetClientRect 失败: %s", w.Title)
	}

	return &macro.Region{
		X:      origin.X,
		Y:      origin.Y,
		Width:  int(r.Right - r.Left),
		Height: int(r.Bottom - r.Top),
	}, nil
}

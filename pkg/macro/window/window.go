// Package window 提供窗口查找、激活和客户区坐标换算。
// 查找类函数用 (nil, nil) 表示未找到（宏循环轮询的常态），
// 激活 / 坐标换算这类必须定位到窗口的操作返回 macro.ErrWindowNotFound。
package window

import (
	"fmt"
	"strings"
	"time"

	"github.com/yxoo/urmacro/internal/logger"
	"github.com/yxoo/urmacro/pkg/macro"
	"github.com/yxoo/urmacro/pkg/process"
)

// Info 窗口信息，查找时一次性采集，之后不再校验。
// 窗口移动或关闭后需要重新查找。
type Info struct {
	PID       int          `json:"pid"`
	Title     string       `json:"title"`
	OwnerName string       `json:"owner_name"`
	Bounds    macro.Region `json:"bounds"`

	handle uintptr // Windows 平台的 HWND，其余平台为 0
}

// List 枚举可见窗口，filter 非空时按标题 / 进程名子串过滤（不区分大小写）
func List(filter string) ([]Info, error) {
	return listPlatform(filter)
}

// Find 按标题查找窗口。
// partial 为 true 时按子串匹配（不区分大小写），否则标题完全相等。
// 取枚举顺序中的第一个匹配；未找到返回 (nil, nil)，不报错。
func Find(title string, partial bool) (*Info, error) {
	if partial {
		windows, err := listPlatform(title)
		if err != nil {
			return nil, err
		}
		if len(windows) == 0 {
			return nil, nil
		}
		return &windows[0], nil
	}

	windows, err := listPlatform("")
	if err != nil {
		return nil, err
	}
	for i := range windows {
		if strings.EqualFold(windows[i].Title, title) {
			return &windows[i], nil
		}
	}
	return nil, nil
}

// Focus 将窗口置于前台。
// fullScale 为 true 时最大化窗口，否则仅还原（若最小化）并激活。
// 未找到窗口返回 macro.ErrWindowNotFound。
func Focus(title string, partial, fullScale bool) error {
	start := time.Now()

	w, err := Find(title, partial)
	if err != nil {
		return err
	}
	if w == nil {
		return fmt.Errorf("%w: %q", macro.ErrWindowNotFound, title)
	}

	err = focusPlatform(w, fullScale)
	elapsed := float64(time.Since(start).Milliseconds())
	if err != nil {
		logger.LogEvent("FOCUS", false, elapsed, w.Title)
		return err
	}
	logger.LogEvent("FOCUS", true, elapsed, w.Title)

	// 给窗口管理器一点切换时间
	macro.Sleep(100 * time.Millisecond)
	return nil
}

// ClientOrigin 获取窗口客户区原点的屏幕坐标，
// 像素 / 鼠标函数的 WithWindow 坐标换算都经过这里。
// 未找到窗口返回 macro.ErrWindowNotFound。
func ClientOrigin(title string) (macro.Point, error) {
	w, err := Find(title, true)
	if err != nil {
		return macro.Point{}, err
	}
	if w == nil {
		return macro.Point{}, fmt.Errorf("%w: %q", macro.ErrWindowNotFound, title)
	}
	return clientOriginPlatform(w)
}

// ClientRegion 获取窗口客户区在屏幕上的区域。
// 未找到窗口返回 macro.ErrWindowNotFound。
func ClientRegion(title string) (*macro.Region, error) {
	w, err := Find(title, true)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("%w: %q", macro.ErrWindowNotFound, title)
	}
	return clientRegionPlatform(w)
}

// WaitFor 轮询等待窗口出现。
// WithTimeout 为 0 时只尝试一次；超时返回 macro.ErrWindowNotFound。
func WaitFor(title string, opts ...macro.Option) (*Info, error) {
	o := macro.ApplyOptions(opts...)

	startTime := time.Now()
	for {
		w, err := Find(title, true)
		if err != nil {
			return nil, err
		}
		if w != nil {
			return w, nil
		}

		if o.Timeout == 0 || time.Since(startTime) > o.Timeout {
			return nil, fmt.Errorf("%w: 等待超时 %q", macro.ErrWindowNotFound, title)
		}

		macro.Sleep(macro.DefaultPollInterval)
	}
}

// FindByProcess 按进程可执行名查找窗口（如 "notepad"）。
// 先用进程列表解析 PID，再取其第一个可见窗口；未找到返回 (nil, nil)。
func FindByProcess(exeName string) (*Info, error) {
	procs, err := process.Find(exeName)
	if err != nil {
		return nil, err
	}
	if len(procs) == 0 {
		return nil, nil
	}

	pids := make(map[int]struct{}, len(procs))
	for _, p := range procs {
		pids[p.PID] = struct{}{}
	}

	windows, err := listPlatform("")
	if err != nil {
		return nil, err
	}
	for i := range windows {
		if _, ok := pids[windows[i].PID]; ok {
			return &windows[i], nil
		}
	}
	return nil, nil
}

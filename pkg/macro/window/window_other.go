//go:build !windows

package window

import (
	"fmt"
	"strings"

	"github.com/go-vgo/robotgo"

	"github.com/yxoo/urmacro/pkg/macro"
)

// listPlatform 用 robotgo 按进程枚举窗口（macOS / Linux）
func listPlatform(filter string) ([]Info, error) {
	pids, err := robotgo.Pids()
	if err != nil {
		return nil, fmt.Errorf("获取进程列表失败: %w", err)
	}

	filterLower := strings.ToLower(filter)
	var windows []Info

	for _, pid := range pids {
		title := robotgo.GetTitle(pid)
		if title == "" {
			continue
		}

		name, _ := robotgo.FindName(pid)

		if filterLower != "" {
			titleLower := strings.ToLower(title)
			nameLower := strings.ToLower(name)
			if !strings.Contains(titleLower, filterLower) && !strings.Contains(nameLower, filterLower) {
				continue
			}
		}

		x, y, w, h := robotgo.GetBounds(pid)
		x, y, w, h = macro.NormalizeRegionForScreen(x, y, w, h)

		windows = append(windows, Info{
			PID:       pid,
			Title:     title,
			OwnerName: name,
			Bounds: macro.Region{
				X:      x,
				Y:      y,
				Width:  w,
				Height: h,
			},
		})
	}

	return windows, nil
}

// focusPlatform 激活窗口
func focusPlatform(w *Info, fullScale bool) error {
	if err := robotgo.ActivePid(w.PID); err != nil {
		return fmt.Errorf("激活窗口失败: %w", err)
	}
	if fullScale {
		robotgo.MaxWindow(w.PID)
	}
	return nil
}

// clientOriginPlatform 获取客户区原点的屏幕坐标
func clientOriginPlatform(w *Info) (macro.Point, error) {
	r, err := clientRegionPlatform(w)
	if err != nil {
		return macro.Point{}, err
	}
	return macro.Point{X: r.X, Y: r.Y}, nil
}

// clientRegionPlatform 获取窗口客户区在屏幕上的区域
func clientRegionPlatform(w *Info) (*macro.Region, error) {
	x, y, width, height := robotgo.GetClient(w.PID)
	x, y, width, height = macro.NormalizeRegionForScreen(x, y, width, height)
	if width == 0 && height == 0 {
		return nil, fmt.Errorf("无法获取窗口客户区: PID=%d", w.PID)
	}

	return &macro.Region{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}, nil
}

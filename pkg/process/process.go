// Package process 提供进程查找功能，供按进程名定位窗口使用
package process

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// Info 进程信息
type Info struct {
	PID  int    `json:"pid"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// List 获取所有进程
func List() ([]Info, error) {
	pids, err := process.Pids()
	if err != nil {
		return nil, fmt.Errorf("获取进程列表失败: %w", err)
	}

	var processes []Info
	for _, pid := range pids {
		proc, err := process.NewProcess(pid)
		if err != nil {
			continue
		}

		name, _ := proc.Name()
		exe, _ := proc.Exe()

		processes = append(processes, Info{
			PID:  int(pid),
			Name: name,
			Path: exe,
		})
	}

	return processes, nil
}

// Find 按名称查找进程（不区分大小写，支持部分匹配）
func Find(name string) ([]Info, error) {
	pids, err := process.Pids()
	if err != nil {
		return nil, fmt.Errorf("获取进程列表失败: %w", err)
	}

	target := strings.ToLower(name)
	var matches []Info

	for _, pid := range pids {
		proc, err := process.NewProcess(pid)
		if err != nil {
			continue
		}

		procName, err := proc.Name()
		if err != nil {
			continue
		}

		if strings.Contains(strings.ToLower(procName), target) {
			exe, _ := proc.Exe()
			matches = append(matches, Info{
				PID:  int(pid),
				Name: procName,
				Path: exe,
			})
		}
	}

	return matches, nil
}

// Exists 判断是否存在名称匹配的进程
func Exists(name string) bool {
	matches, err := Find(name)
	return err == nil && len(matches) > 0
}

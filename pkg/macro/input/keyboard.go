// Package input 提供键盘、鼠标和剪贴板操作。
// 按住状态（键 / 鼠标按钮）由本包自行记录：操作系统拥有全局输入状态，
// 这里只追踪本进程按下过什么，ReleaseAll 据此尽力释放。
package input

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-vgo/robotgo"
)

// DefaultWriteDelay 逐字符输入的默认间隔
const DefaultWriteDelay = 50 * time.Millisecond

// 按键按下到抬起之间的停顿，太短部分程序收不到
const keySettleDelay = 10 * time.Millisecond

var (
	heldMu   sync.Mutex
	heldKeys = make(map[string]struct{})
)

// Press 按一次键（按下 + 短暂停顿 + 抬起）
func Press(key string) error {
	k, err := ResolveKey(key)
	if err != nil {
		return err
	}

	if err := robotgo.KeyToggle(k, "down"); err != nil {
		return fmt.Errorf("按键注入失败: %w", err)
	}
	time.Sleep(keySettleDelay)
	if err := robotgo.KeyToggle(k, "up"); err != nil {
		return fmt.Errorf("按键注入失败: %w", err)
	}
	return nil
}

// Hold 按住一个键不抬起，重复调用不会重复注入。
// 用 Release 或 ReleaseAll 释放。
func Hold(key string) error {
	k, err := ResolveKey(key)
	if err != nil {
		return err
	}

	heldMu.Lock()
	defer heldMu.Unlock()

	if _, held := heldKeys[k]; held {
		return nil
	}
	if err := robotgo.KeyToggle(k, "down"); err != nil {
		return fmt.Errorf("按键注入失败: %w", err)
	}
	heldKeys[k] = struct{}{}
	return nil
}

// Release 释放用 Hold 按住的键，未按住时不做任何事
func Release(key string) error {
	k, err := ResolveKey(key)
	if err != nil {
		return err
	}

	heldMu.Lock()
	defer heldMu.Unlock()

	if _, held := heldKeys[k]; !held {
		return nil
	}
	if err := robotgo.KeyToggle(k, "up"); err != nil {
		return fmt.Errorf("按键注入失败: %w", err)
	}
	delete(heldKeys, k)
	return nil
}

// ReleaseAll 尽力释放所有按住的键和鼠标按钮
func ReleaseAll() {
	heldMu.Lock()
	keys := make([]string, 0, len(heldKeys))
	for k := range heldKeys {
		keys = append(keys, k)
	}
	heldMu.Unlock()

	for _, k := range keys {
		_ = Release(k)
	}
	ReleaseLeft()
	ReleaseRight()
}

// HeldKeys 返回当前记录为按住状态的键（注入器键名）
func HeldKeys() []string {
	heldMu.Lock()
	defer heldMu.Unlock()

	keys := make([]string, 0, len(heldKeys))
	for k := range heldKeys {
		keys = append(keys, k)
	}
	return keys
}

// Write 逐字符输入 Unicode 文本（支持重音和符号），
// delay 为字符间隔，<= 0 时使用 DefaultWriteDelay。
func Write(text string, delay time.Duration) error {
	if delay <= 0 {
		delay = DefaultWriteDelay
	}

	for _, r := range text {
		robotgo.TypeStr(string(r))
		time.Sleep(delay)
	}
	return nil
}

// Hotkey 按组合键：顺序按下、逆序抬起
func Hotkey(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	resolved := make([]string, len(keys))
	for i, key := range keys {
		k, err := ResolveKey(key)
		if err != nil {
			return err
		}
		resolved[i] = k
	}

	for _, k := range resolved {
		if err := robotgo.KeyToggle(k, "down"); err != nil {
			return fmt.Errorf("按键注入失败: %w", err)
		}
		time.Sleep(keySettleDelay)
	}
	for i := len(resolved) - 1; i >= 0; i-- {
		if err := robotgo.KeyToggle(resolved[i], "up"); err != nil {
			return fmt.Errorf("按键注入失败: %w", err)
		}
		time.Sleep(keySettleDelay)
	}
	return nil
}

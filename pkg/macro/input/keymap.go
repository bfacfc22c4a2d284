package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/yxoo/urmacro/pkg/macro"
)

// keyMap 人类可读按键名 → 注入器按键名（robotgo 键名）
// 查找不区分大小写，单字符的字母 / 数字 / 标点直接透传。
var keyMap = map[string]string{
	"esc":         "esc",
	"escape":      "esc",
	"enter":       "enter",
	"return":      "enter",
	"space":       "space",
	"tab":         "tab",
	"shift":       "shift",
	"ctrl":        "ctrl",
	"control":     "ctrl",
	"alt":         "alt",
	"cmd":         "cmd",
	"command":     "cmd",
	"backspace":   "backspace",
	"delete":      "delete",
	"insert":      "insert",
	"home":        "home",
	"end":         "end",
	"pageup":      "pageup",
	"pagedown":    "pagedown",
	"up":          "up",
	"down":        "down",
	"left":        "left",
	"right":       "right",
	"capslock":    "capslock",
	"numlock":     "num_lock",
	"printscreen": "printscreen",

	"f1":  "f1",
	"f2":  "f2",
	"f3":  "f3",
	"f4":  "f4",
	"f5":  "f5",
	"f6":  "f6",
	"f7":  "f7",
	"f8":  "f8",
	"f9":  "f9",
	"f10": "f10",
	"f11": "f11",
	"f12": "f12",
}

// ResolveKey 将按键名解析为注入器按键名。
// 未知按键返回 macro.ErrUnknownKey，不注入任何事件。
func ResolveKey(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: 按键名为空", macro.ErrUnknownKey)
	}

	lower := strings.ToLower(key)
	if mapped, ok := keyMap[lower]; ok {
		return mapped, nil
	}

	// 单字符：字母、数字和可打印标点直接透传
	runes := []rune(lower)
	if len(runes) == 1 {
		r := runes[0]
		if r <= unicode.MaxASCII && unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return string(r), nil
		}
	}

	return "", fmt.Errorf("%w: %q", macro.ErrUnknownKey, key)
}

// KnownKeys 返回所有命名按键（不含单字符透传），用于帮助信息
func KnownKeys() []string {
	keys := make([]string, 0, len(keyMap))
	for k := range keyMap {
		keys = append(keys, k)
	}
	return keys
}

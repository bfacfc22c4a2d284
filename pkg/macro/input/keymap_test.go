package input

import (
	"errors"
	"testing"

	"github.com/yxoo/urmacro/pkg/macro"
)

func TestResolveKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "named key", input: "enter", want: "enter"},
		{name: "alias return", input: "return", want: "enter"},
		{name: "alias escape", input: "escape", want: "esc"},
		{name: "alias control", input: "control", want: "ctrl"},
		{name: "case insensitive", input: "ENTER", want: "enter"},
		{name: "mixed case named", input: "PageUp", want: "pageup"},
		{name: "numlock mapping", input: "numlock", want: "num_lock"},
		{name: "function key", input: "F5", want: "f5"},
		{name: "single letter", input: "a", want: "a"},
		{name: "single letter uppercase", input: "A", want: "a"},
		{name: "single digit", input: "7", want: "7"},
		{name: "punctuation", input: ";", want: ";"},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown multi-char", input: "superkey", wantErr: true},
		{name: "non-ascii rune", input: "é", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveKey(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ResolveKey(%q) 应返回错误", tt.input)
				}
				if !errors.Is(err, macro.ErrUnknownKey) {
					t.Errorf("错误应包装 ErrUnknownKey, 实际为 %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveKey(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ResolveKey(%q) = %q, 期望 %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPressUnknownKeyDoesNotInject(t *testing.T) {
	err := Press("no-such-key")
	if !errors.Is(err, macro.ErrUnknownKey) {
		t.Errorf("未知按键应返回 ErrUnknownKey, 实际为 %v", err)
	}
}

func TestHoldUnknownKeyLeavesStateClean(t *testing.T) {
	if err := Hold("no-such-key"); !errors.Is(err, macro.ErrUnknownKey) {
		t.Fatalf("未知按键应返回 ErrUnknownKey, 实际为 %v", err)
	}
	for _, k := range HeldKeys() {
		if k == "no-such-key" {
			t.Error("未知按键不应进入按住状态")
		}
	}
}

func TestKnownKeys(t *testing.T) {
	keys := KnownKeys()
	if len(keys) == 0 {
		t.Fatal("KnownKeys 不应为空")
	}

	found := false
	for _, k := range keys {
		if k == "enter" {
			found = true
			break
		}
	}
	if !found {
		t.Error("KnownKeys 应包含 enter")
	}
}

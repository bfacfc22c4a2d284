package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"DEBUG", DEBUG},
		{"debug", DEBUG},
		{"INFO", INFO},
		{"WARN", WARN},
		{"WARNING", WARN},
		{"ERROR", ERROR},
		{"", INFO},
		{"garbage", INFO},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, 期望 %v", tt.input, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	if DEBUG.String() != "DEBUG" || ERROR.String() != "ERROR" {
		t.Error("Level.String() 输出不正确")
	}
}

func TestLevelFiltering(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "test.log")

	l := New()
	l.SetConsole(false)
	if err := l.SetFile(tempFile); err != nil {
		t.Fatalf("设置日志文件失败: %v", err)
	}
	defer l.Close()

	l.SetLevel(WARN)
	l.Debug("debug 消息")
	l.Info("info 消息")
	l.Warn("warn 消息")
	l.Error("error 消息")

	data, err := os.ReadFile(tempFile)
	if err != nil {
		t.Fatalf("读取日志文件失败: %v", err)
	}
	content := string(data)

	if strings.Contains(content, "debug 消息") || strings.Contains(content, "info 消息") {
		t.Error("低于 WARN 级别的日志不应输出")
	}
	if !strings.Contains(content, "warn 消息") || !strings.Contains(content, "error 消息") {
		t.Error("WARN 及以上级别的日志应输出")
	}
}

func TestLogEvent(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "event.log")

	l := New()
	l.SetConsole(false)
	if err := l.SetFile(tempFile); err != nil {
		t.Fatalf("设置日志文件失败: %v", err)
	}
	defer l.Close()

	l.LogEvent("FOCUS", true, 12.5, "记事本")
	l.LogEvent("OCR", false, 250.0, "识别失败")

	data, err := os.ReadFile(tempFile)
	if err != nil {
		t.Fatalf("读取日志文件失败: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "OK") {
		t.Error("成功事件应带 OK 标记")
	}
	if !strings.Contains(content, "NG") {
		t.Error("失败事件应带 NG 标记")
	}
	if !strings.Contains(content, "FOCUS") || !strings.Contains(content, "OCR") {
		t.Error("事件日志应包含分类名")
	}
}

func TestSetFileEmptyPathDisablesFileOutput(t *testing.T) {
	l := New()
	if err := l.SetFile(""); err != nil {
		t.Errorf("空路径不应报错: %v", err)
	}
	l.Close()
}

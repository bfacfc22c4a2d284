//go:build !darwin

// Package permissions 提供系统权限检查功能。
// 非 macOS 系统的输入注入和截屏不需要特殊授权。
package permissions

// Status 权限状态
type Status struct {
	Accessibility   bool `json:"accessibility"`
	ScreenRecording bool `json:"screen_recording"`
	AllGranted      bool `json:"all_granted"`
}

// Check 检查所需权限
func Check() *Status {
	return &Status{
		Accessibility:   true,
		ScreenRecording: true,
		AllGranted:      true,
	}
}

// RequestAccessibility 请求辅助功能权限
func RequestAccessibility() bool {
	return true
}

// OpenAccessibilitySettings 打开辅助功能设置页面
func OpenAccessibilitySettings() {}

// OpenScreenRecordingSettings 打开屏幕录制设置页面
func OpenScreenRecordingSettings() {}

// Instructions 获取缺失权限的授权说明
func Instructions(status *Status) string {
	return ""
}

// Ensure 确保权限已授予
func Ensure() (bool, string) {
	return true, ""
}

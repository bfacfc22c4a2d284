//go:build darwin

// Package permissions 提供系统权限检查功能（macOS 专用）。
// 输入注入需要辅助功能权限，截屏和取色需要屏幕录制权限。
package permissions

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework ApplicationServices -framework CoreGraphics
#import <Cocoa/Cocoa.h>
#import <ApplicationServices/ApplicationServices.h>
#import <CoreGraphics/CoreGraphics.h>

int checkAccessibilityPermission() {
    NSDictionary *options = @{(__bridge NSString *)kAXTrustedCheckOptionPrompt: @NO};
    return AXIsProcessTrustedWithOptions((__bridge CFDictionaryRef)options) ? 1 : 0;
}

int requestAccessibilityPermission() {
    NSDictionary *options = @{(__bridge NSString *)kAXTrustedCheckOptionPrompt: @YES};
    return AXIsProcessTrustedWithOptions((__bridge CFDictionaryRef)options) ? 1 : 0;
}

int checkScreenRecordingPermission() {
    if (@available(macOS 10.15, *)) {
        CFArrayRef windowList = CGWindowListCopyWindowInfo(
            kCGWindowListOptionOnScreenOnly | kCGWindowListExcludeDesktopElements,
            kCGNullWindowID
        );

        if (windowList == NULL) {
            return 0;
        }

        CFIndex count = CFArrayGetCount(windowList);
        int hasNames = 0;

        for (CFIndex i = 0; i < count; i++) {
            CFDictionaryRef window = (CFDictionaryRef)CFArrayGetValueAtIndex(windowList, i);
            CFStringRef name = (CFStringRef)CFDictionaryGetValue(window, kCGWindowName);
            if (name != NULL && CFStringGetLength(name) > 0) {
                hasNames = 1;
                break;
            }
        }

        CFRelease(windowList);
        return (count == 0 || hasNames) ? 1 : 0;
    }
    return 1;
}

void openAccessibilityPreferences() {
    NSString *urlString = @"x-apple.systempreferences:com.apple.preference.security?Privacy_Accessibility";
    [[NSWorkspace sharedWorkspace] openURL:[NSURL URLWithString:urlString]];
}

void openScreenRecordingPreferences() {
    NSString *urlString = @"x-apple.systempreferences:com.apple.preference.security?Privacy_ScreenCapture";
    [[NSWorkspace sharedWorkspace] openURL:[NSURL URLWithString:urlString]];
}
*/
import "C"

// Status 权限状态
type Status struct {
	Accessibility   bool `json:"accessibility"`
	ScreenRecording bool `json:"screen_recording"`
	AllGranted      bool `json:"all_granted"`
}

// Check 检查所需权限（不触发弹窗）
func Check() *Status {
	accessibility := C.checkAccessibilityPermission() == 1
	screenRecording := C.checkScreenRecordingPermission() == 1

	return &Status{
		Accessibility:   accessibility,
		ScreenRecording: screenRecording,
		AllGranted:      accessibility && screenRecording,
	}
}

// RequestAccessibility 请求辅助功能权限（触发系统弹窗）
func RequestAccessibility() bool {
	return C.requestAccessibilityPermission() == 1
}

// OpenAccessibilitySettings 打开辅助功能设置页面
func OpenAccessibilitySettings() {
	C.openAccessibilityPreferences()
}

// OpenScreenRecordingSettings 打开屏幕录制设置页面
func OpenScreenRecordingSettings() {
	C.openScreenRecordingPreferences()
}

// Instructions 获取缺失权限的授权说明，全部授予时返回空串
func Instructions(status *Status) string {
	if status.AllGranted {
		return ""
	}

	msg := "需要授权以下权限才能正常工作:\n\n"

	if !status.Accessibility {
		msg += "1. 辅助功能权限 (用于注入鼠标/键盘输入)\n"
		msg += "   系统设置 > 隐私与安全性 > 辅助功能\n\n"
	}

	if !status.ScreenRecording {
		msg += "2. 屏幕录制权限 (用于截屏和取色)\n"
		msg += "   系统设置 > 隐私与安全性 > 屏幕录制\n\n"
	}

	msg += "授权后需要重新运行。"

	return msg
}

// Ensure 确保权限已授予，未授予时返回授权说明
func Ensure() (bool, string) {
	status := Check()
	if status.AllGranted {
		return true, ""
	}

	return false, Instructions(status)
}

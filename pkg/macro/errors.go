package macro

import "errors"

var (
	// ErrUnknownKey 按键名无法解析，没有注入任何输入事件
	ErrUnknownKey = errors.New("未知按键")

	// ErrWindowNotFound 需要定位窗口的操作找不到目标窗口
	ErrWindowNotFound = errors.New("未找到窗口")

	// ErrFeatureUnavailable 调用了未启用的可选功能（如未安装 OCR 模型）
	ErrFeatureUnavailable = errors.New("功能不可用")
)

package macro

import "time"

// Option 配置选项函数类型
type Option func(*Options)

// Options 像素 / 鼠标 / OCR 操作的公共配置
type Options struct {
	// Tolerance 颜色匹配容差（每通道最大绝对差）
	Tolerance int
	// WindowTitle 非空时坐标视为该窗口客户区的相对坐标，
	// 调用时转换为屏幕绝对坐标
	WindowTitle string
	// Timeout 轮询类操作（等待窗口）的超时时间，0 表示只尝试一次
	Timeout time.Duration
	// ScanFromEnd 颜色扫描从区域右下角反向进行（默认从左上角正向）
	ScanFromEnd bool
	// ScanStepX / ScanStepY 颜色扫描的像素步长，
	// 大于 1 时跳像素扫描以加速，可能错过小于步长的色块
	ScanStepX int
	ScanStepY int
}

// DefaultOptions 默认配置
func DefaultOptions() *Options {
	return &Options{
		Tolerance:   10,
		WindowTitle: "",
		Timeout:     0,
		ScanFromEnd: false,
		ScanStepX:   1,
		ScanStepY:   1,
	}
}

// ApplyOptions 应用配置选项
func ApplyOptions(opts ...Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithTolerance 设置颜色匹配容差
func WithTolerance(t int) Option {
	return func(o *Options) {
		if t >= 0 {
			o.Tolerance = t
		}
	}
}

// WithWindow 设置坐标参照窗口（客户区相对坐标）
func WithWindow(title string) Option {
	return func(o *Options) {
		o.WindowTitle = title
	}
}

// WithTimeout 设置轮询超时时间
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}

// WithScanFromEnd 颜色扫描改为从区域右下角反向进行
func WithScanFromEnd() Option {
	return func(o *Options) {
		o.ScanFromEnd = true
	}
}

// WithScanStep 设置颜色扫描的像素步长（< 1 时按 1 处理）
func WithScanStep(stepX, stepY int) Option {
	return func(o *Options) {
		if stepX >= 1 {
			o.ScanStepX = stepX
		}
		if stepY >= 1 {
			o.ScanStepY = stepY
		}
	}
}

package ocr

import (
	"fmt"
	"image"
	"strings"
	"sync"
	"time"

	goocr "github.com/getcharzp/go-ocr"

	"github.com/yxoo/urmacro/internal/logger"
	"github.com/yxoo/urmacro/pkg/macro"
)

// TextRecognizer OCR 识别器，封装 go-ocr 引擎。
// 引擎非线程安全，内部用锁串行化识别调用。
type TextRecognizer struct {
	engine goocr.Engine
	config Config
	mu     sync.Mutex
}

// 全局单例：能力在首次使用时解析一次，之后的调用要么可用要么
// 稳定返回 macro.ErrFeatureUnavailable
var (
	globalMu         sync.Mutex
	globalRecognizer *TextRecognizer
	globalErr        error
	globalDone       bool
	globalConfig     *Config
)

// Available 判断 OCR 能力是否可用（配置文件齐全）。
// 已初始化时反映初始化结果，否则检查待用配置。
func Available() bool {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalDone {
		return globalErr == nil
	}
	if globalConfig != nil {
		return globalConfig.Complete()
	}
	return DefaultConfig().Complete()
}

// New 创建 OCR 识别器。
// 配置不完整返回 macro.ErrFeatureUnavailable。
func New(config Config) (*TextRecognizer, error) {
	if !config.Complete() {
		return nil, fmt.Errorf("%w: OCR 模型文件不在位", macro.ErrFeatureUnavailable)
	}

	engine, err := goocr.NewPaddleOcrEngine(goocr.Config{
		OnnxRuntimeLibPath: config.OnnxRuntimeLibPath,
		DetModelPath:       config.DetModelPath,
		RecModelPath:       config.RecModelPath,
		DictPath:           config.DictPath,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 OCR 引擎失败: %w", err)
	}

	logger.Info("OCR 引擎初始化成功 (lang=%s)", config.Language)

	return &TextRecognizer{
		engine: engine,
		config: config,
	}, nil
}

// SetGlobalConfig 指定全局识别器惰性初始化时使用的配置，
// 需在首次使用前调用；识别器已初始化后配置不再生效并返回错误。
func SetGlobalConfig(config Config) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalDone {
		return fmt.Errorf("OCR 引擎已初始化，配置不再生效")
	}
	globalConfig = &config
	return nil
}

// Global 获取全局 OCR 识别器，首次调用时初始化。
// 未通过 SetGlobalConfig 指定配置时使用默认配置。
func Global() (*TextRecognizer, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalDone {
		return globalRecognizer, globalErr
	}

	config := DefaultConfig()
	if globalConfig != nil {
		config = *globalConfig
	}

	globalRecognizer, globalErr = New(config)
	globalDone = true
	return globalRecognizer, globalErr
}

// InitGlobal 用指定配置立即初始化全局识别器（启动时调用一次）。
// 识别器已初始化时返回错误，不会静默丢弃配置。
func InitGlobal(config Config) error {
	if err := SetGlobalConfig(config); err != nil {
		return err
	}
	_, err := Global()
	return err
}

// Recognize 识别图像中的所有文字
func (r *TextRecognizer) Recognize(img image.Image) ([]Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	startTime := time.Now()

	raw, err := r.engine.RunOCR(img)
	if err != nil {
		elapsed := float64(time.Since(startTime).Milliseconds())
		logger.LogEvent("OCR", false, elapsed, "识别失败")
		return nil, fmt.Errorf("OCR 识别失败: %w", err)
	}

	results := make([]Result, 0, len(raw))
	for _, rec := range raw {
		results = append(results, Result{
			Text:       rec.Text,
			Confidence: float64(rec.Score),
			Bounds:     rec.Box,
		})
	}

	elapsed := float64(time.Since(startTime).Milliseconds())
	logger.LogEvent("OCR", true, elapsed, fmt.Sprintf("识别到 %d 个文本", len(results)))

	return results, nil
}

// AllText 识别图像中的所有文字并用空格拼接
func (r *TextRecognizer) AllText(img image.Image) (string, error) {
	results, err := r.Recognize(img)
	if err != nil {
		return "", err
	}

	var texts []string
	for _, result := range results {
		if result.Text != "" {
			texts = append(texts, result.Text)
		}
	}
	return strings.Join(texts, " "), nil
}

// FindText 查找特定文字的中心位置（部分匹配，不区分大小写）。
// 未找到返回 (nil, nil)。
func (r *TextRecognizer) FindText(img image.Image, targetText string) (*macro.Point, error) {
	results, err := r.Recognize(img)
	if err != nil {
		return nil, err
	}

	target := strings.ToLower(targetText)
	for _, result := range results {
		if strings.Contains(strings.ToLower(result.Text), target) {
			x, y := result.Center()
			return &macro.Point{X: x, Y: y}, nil
		}
	}
	return nil, nil
}

// Close 释放引擎资源
func (r *TextRecognizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.engine != nil {
		r.engine.Destroy()
		r.engine = nil
	}
	return nil
}

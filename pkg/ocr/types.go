// Package ocr 封装可选的文字识别能力（PaddleOCR over ONNX Runtime）。
// 模型文件不在位时功能不可用，调用方会得到 macro.ErrFeatureUnavailable，
// 而不是深处某个难以理解的加载失败。
package ocr

import (
	"os"
	"path/filepath"
	"runtime"
)

// Config OCR 配置
type Config struct {
	// OnnxRuntimeLibPath ONNX Runtime 动态库路径
	OnnxRuntimeLibPath string `json:"onnx_runtime_lib_path"`
	// DetModelPath 检测模型路径
	DetModelPath string `json:"det_model_path"`
	// RecModelPath 识别模型路径
	RecModelPath string `json:"rec_model_path"`
	// DictPath 字典文件路径
	DictPath string `json:"dict_path"`
	// Language 识别语言（由模型决定，如 "ch", "en", "fr"）
	Language string `json:"language"`
}

// Result 单条识别结果
type Result struct {
	// Text 识别的文字内容
	Text string `json:"text"`
	// Confidence 识别置信度 (0-1)
	Confidence float64 `json:"confidence"`
	// Bounds 文字边界框（图像坐标）
	Bounds [4]int `json:"bounds"` // x1, y1, x2, y2
}

// Center 返回文字边界框中心点
func (r Result) Center() (x, y int) {
	return (r.Bounds[0] + r.Bounds[2]) / 2, (r.Bounds[1] + r.Bounds[3]) / 2
}

// DefaultConfig 默认配置：在可执行文件目录和工作目录下查找模型
func DefaultConfig() Config {
	return Config{
		OnnxRuntimeLibPath: findDefaultOnnxRuntime(),
		DetModelPath:       findDefaultModel("det.onnx"),
		RecModelPath:       findDefaultModel("rec.onnx"),
		DictPath:           findDefaultModel("dict.txt"),
		Language:           "fr",
	}
}

// WithDefaults 用默认查找逻辑补齐未指定的字段，
// 使部分填写的配置文件（只改语言或只改某个路径）也能工作
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.OnnxRuntimeLibPath == "" {
		c.OnnxRuntimeLibPath = d.OnnxRuntimeLibPath
	}
	if c.DetModelPath == "" {
		c.DetModelPath = d.DetModelPath
	}
	if c.RecModelPath == "" {
		c.RecModelPath = d.RecModelPath
	}
	if c.DictPath == "" {
		c.DictPath = d.DictPath
	}
	if c.Language == "" {
		c.Language = d.Language
	}
	return c
}

// Complete 判断配置指向的全部文件是否就位
func (c Config) Complete() bool {
	return fileExists(c.OnnxRuntimeLibPath) &&
		fileExists(c.DetModelPath) &&
		fileExists(c.RecModelPath) &&
		fileExists(c.DictPath)
}

func getExecutableDir() string {
	execPath, err := os.Executable()
	if err != nil {
		return "."
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return "."
	}
	return filepath.Dir(execPath)
}

// findDefaultOnnxRuntime 按操作系统查找 ONNX Runtime 动态库
func findDefaultOnnxRuntime() string {
	execDir := getExecutableDir()

	var paths []string
	switch runtime.GOOS {
	case "darwin":
		paths = []string{
			filepath.Join(execDir, "libonnxruntime.dylib"),
			filepath.Join("models", "lib", "libonnxruntime.dylib"),
		}
	case "windows":
		paths = []string{
			filepath.Join(execDir, "onnxruntime.dll"),
			filepath.Join("models", "lib", "onnxruntime.dll"),
			"onnxruntime.dll",
		}
	default:
		paths = []string{
			filepath.Join(execDir, "libonnxruntime.so"),
			filepath.Join("models", "lib", "libonnxruntime.so"),
		}
	}

	for _, p := range paths {
		if fileExists(p) {
			return p
		}
	}
	return paths[len(paths)-1]
}

// findDefaultModel 查找模型文件
func findDefaultModel(filename string) string {
	execDir := getExecutableDir()

	paths := []string{
		filepath.Join(execDir, "models", filename),
		filepath.Join("models", filename),
	}

	for _, p := range paths {
		if fileExists(p) {
			return p
		}
	}
	return paths[0]
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Package config 提供本地配置管理（~/.urmacro/config.json）
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/yxoo/urmacro/pkg/ocr"
)

// Config urmacro 本地配置
type Config struct {
	// LogLevel 日志级别 (DEBUG/INFO/WARN/ERROR)
	LogLevel string `json:"log_level"`
	// LogFile 日志文件路径，空表示只输出到控制台
	LogFile string `json:"log_file"`
	// OCR 可选的 OCR 配置，零值时使用默认模型查找逻辑
	OCR ocr.Config `json:"ocr"`
}

// Default 默认配置
func Default() *Config {
	return &Config{
		LogLevel: "INFO",
		LogFile:  "",
		OCR:      ocr.Config{Language: "fr"},
	}
}

// Manager 配置管理器
type Manager struct {
	configDir  string
	configFile string
	mu         sync.RWMutex
}

// NewManager 创建配置管理器，配置目录为 ~/.urmacro
func NewManager() *Manager {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := filepath.Join(homeDir, ".urmacro")
	return &Manager{
		configDir:  configDir,
		configFile: filepath.Join(configDir, "config.json"),
	}
}

// NewManagerWithDir 使用指定目录创建配置管理器
func NewManagerWithDir(configDir string) *Manager {
	return &Manager{
		configDir:  configDir,
		configFile: filepath.Join(configDir, "config.json"),
	}
}

func (m *Manager) ensureDir() error {
	return os.MkdirAll(m.configDir, 0755)
}

// Load 加载配置，文件不存在时返回默认配置
func (m *Manager) Load() (*Config, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, err := os.Stat(m.configFile); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(m.configFile)
	if err != nil {
		return Default(), fmt.Errorf("读取配置文件失败: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("解析配置文件失败: %w", err)
	}

	return cfg, nil
}

// Save 保存配置
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureDir(); err != nil {
		return fmt.Errorf("创建配置目录失败: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	if err := os.WriteFile(m.configFile, data, 0600); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}

	return nil
}

// Exists 判断配置文件是否存在
func (m *Manager) Exists() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := os.Stat(m.configFile)
	return err == nil
}

// Clear 删除配置文件
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := os.Stat(m.configFile); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(m.configFile)
}

// GetConfigDir 获取配置目录
func (m *Manager) GetConfigDir() string {
	return m.configDir
}

// GetConfigFile 获取配置文件路径
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// 包级别默认管理器
var (
	defaultManager     *Manager
	defaultManagerOnce sync.Once
)

// GetDefaultManager 获取默认配置管理器
func GetDefaultManager() *Manager {
	defaultManagerOnce.Do(func() {
		defaultManager = NewManager()
	})
	return defaultManager
}

// Load 用默认管理器加载配置
func Load() (*Config, error) {
	return GetDefaultManager().Load()
}

// Save 用默认管理器保存配置
func Save(cfg *Config) error {
	return GetDefaultManager().Save(cfg)
}

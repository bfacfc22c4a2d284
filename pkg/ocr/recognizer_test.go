package ocr

import (
	"errors"
	"testing"

	"github.com/yxoo/urmacro/pkg/macro"
)

// 全局识别器是进程级单例，本测试覆盖它的完整生命周期，
// 因此集中在一个测试函数里按顺序验证。
func TestGlobalLifecycle(t *testing.T) {
	// 模型文件不存在的配置
	incomplete := Config{Language: "fr"}

	if err := SetGlobalConfig(incomplete); err != nil {
		t.Fatalf("初始化前设置配置不应报错: %v", err)
	}

	if Available() {
		t.Error("模型缺失时 Available 应为 false")
	}

	_, err := Global()
	if !errors.Is(err, macro.ErrFeatureUnavailable) {
		t.Fatalf("模型缺失应返回 ErrFeatureUnavailable, 实际为 %v", err)
	}

	// 结果解析一次后保持稳定
	_, err = Global()
	if !errors.Is(err, macro.ErrFeatureUnavailable) {
		t.Errorf("重复调用应返回相同结果, 实际为 %v", err)
	}
	if Available() {
		t.Error("初始化失败后 Available 应为 false")
	}

	// 已初始化后配置不再生效，不允许静默丢弃
	if err := SetGlobalConfig(Config{}); err == nil {
		t.Error("初始化后 SetGlobalConfig 应返回错误")
	}
	if err := InitGlobal(Config{}); err == nil {
		t.Error("初始化后 InitGlobal 应返回错误")
	}
}

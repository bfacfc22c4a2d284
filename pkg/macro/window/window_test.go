package window

import (
	"errors"
	"testing"
	"time"

	"github.com/yxoo/urmacro/pkg/macro"
)

func TestFindNotFoundReturnsNilNil(t *testing.T) {
	w, err := Find("NoSuchTitle12345__urmacro", true)
	if err != nil {
		t.Skipf("当前环境无法枚举窗口: %v", err)
	}
	if w != nil {
		t.Errorf("不存在的窗口应返回 nil, 实际为 %+v", w)
	}
}

func TestFocusNotFound(t *testing.T) {
	err := Focus("NoSuchTitle12345__urmacro", true, false)
	if err == nil {
		t.Fatal("不存在的窗口应返回错误")
	}
	if !errors.Is(err, macro.ErrWindowNotFound) {
		t.Skipf("窗口枚举失败而非未找到: %v", err)
	}
}

func TestClientOriginNotFound(t *testing.T) {
	_, err := ClientOrigin("NoSuchTitle12345__urmacro")
	if err == nil {
		t.Fatal("不存在的窗口应返回错误")
	}
	if !errors.Is(err, macro.ErrWindowNotFound) {
		t.Skipf("窗口枚举失败而非未找到: %v", err)
	}
}

func TestWaitForTimesOut(t *testing.T) {
	start := time.Now()
	_, err := WaitFor("NoSuchTitle12345__urmacro", macro.WithTimeout(500*time.Millisecond))
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("等待不存在的窗口应超时")
	}
	if !errors.Is(err, macro.ErrWindowNotFound) {
		t.Skipf("窗口枚举失败而非超时: %v", err)
	}
	if elapsed < 500*time.Millisecond {
		t.Errorf("应等满超时时间, 实际 %v", elapsed)
	}

	t.Logf("等待超时耗时: %v", elapsed)
}

func TestWaitForZeroTimeoutSingleAttempt(t *testing.T) {
	start := time.Now()
	_, err := WaitFor("NoSuchTitle12345__urmacro")
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("不存在的窗口应返回错误")
	}
	// 超时为 0 时只尝试一次，不应进入轮询
	if elapsed > 2*time.Second {
		t.Errorf("零超时应立即返回, 实际耗时 %v", elapsed)
	}
}

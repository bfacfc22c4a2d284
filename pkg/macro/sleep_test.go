package macro

import (
	"testing"
	"time"
)

func TestSleepInterruptibleCompletes(t *testing.T) {
	d := 120 * time.Millisecond
	start := time.Now()

	ok := SleepInterruptible(d, func() bool { return true })

	elapsed := time.Since(start)
	if !ok {
		t.Error("未被中断的休眠应返回 true")
	}
	if elapsed < d {
		t.Errorf("休眠时长不足: %v < %v", elapsed, d)
	}

	t.Logf("完整休眠耗时: %v", elapsed)
}

func TestSleepInterruptibleAborts(t *testing.T) {
	// 第一个时间片后预期变为 false
	calls := 0
	isActive := func() bool {
		calls++
		return calls <= 1
	}

	start := time.Now()
	ok := SleepInterruptible(10*time.Second, isActive)
	elapsed := time.Since(start)

	if ok {
		t.Error("被中断的休眠应返回 false")
	}
	// 中断延迟最多一个时间片（留一些调度余量）
	if elapsed > PollQuantum+100*time.Millisecond {
		t.Errorf("中断延迟过长: %v", elapsed)
	}

	t.Logf("中断耗时: %v (调用 isActive %d 次)", elapsed, calls)
}

func TestSleepInterruptibleImmediateAbort(t *testing.T) {
	start := time.Now()
	ok := SleepInterruptible(10*time.Second, func() bool { return false })
	elapsed := time.Since(start)

	if ok {
		t.Error("预期一开始就为 false 时应立即返回 false")
	}
	if elapsed > 50*time.Millisecond {
		t.Errorf("应立即返回, 实际耗时 %v", elapsed)
	}
}

func TestSleepInterruptibleZeroDuration(t *testing.T) {
	if !SleepInterruptible(0, func() bool { return true }) {
		t.Error("零时长休眠应返回 true")
	}
}

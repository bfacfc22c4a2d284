package macro

import "time"

// PollQuantum 可中断休眠的轮询时间片
// 决定了最坏情况下的中断延迟：无论总时长多长，
// 从预期返回 false 到 SleepInterruptible 返回最多一个时间片。
const PollQuantum = 50 * time.Millisecond

// SleepInterruptible 可中断休眠。
// 以 PollQuantum 为步长分段休眠，每个时间片调用一次 isActive。
//
// 返回 true  表示完整休眠了 d 时长。
// 返回 false 表示 isActive 返回了 false，休眠被提前中断，
// 调用方应当退出自己的宏循环。
//
//	if !macro.SleepInterruptible(1500*time.Millisecond, getActiveStatus) {
//		return // 宏在休眠期间被停止
//	}
func SleepInterruptible(d time.Duration, isActive func() bool) bool {
	deadline := time.Now().Add(d)

	for {
		if !isActive() {
			return false
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return true
		}

		if remaining < PollQuantum {
			time.Sleep(remaining)
		} else {
			time.Sleep(PollQuantum)
		}
	}
}

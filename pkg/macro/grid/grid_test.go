package grid

import (
	"testing"

	"github.com/yxoo/urmacro/pkg/macro"
)

func TestZoneCenter(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           macro.Point
	}{
		{name: "origin square", x1: 0, y1: 0, x2: 100, y2: 100, want: macro.Point{X: 50, Y: 50}},
		{name: "offset rectangle", x1: 100, y1: 200, x2: 300, y2: 400, want: macro.Point{X: 200, Y: 300}},
		{name: "reversed corners", x1: 300, y1: 400, x2: 100, y2: 200, want: macro.Point{X: 200, Y: 300}},
		{name: "degenerate point", x1: 42, y1: 42, x2: 42, y2: 42, want: macro.Point{X: 42, Y: 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ZoneCenter(tt.x1, tt.y1, tt.x2, tt.y2)
			if got != tt.want {
				t.Errorf("ZoneCenter() = (%d, %d), 期望 (%d, %d)",
					got.X, got.Y, tt.want.X, tt.want.Y)
			}
		})
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Position
		wantErr bool
	}{
		{
			name:  "valid 2x2 grid position 1,1",
			input: "2.2.1.1",
			want:  &Position{Rows: 2, Cols: 2, Row: 1, Col: 1},
		},
		{
			name:  "valid 3x3 grid position 2,2",
			input: "3.3.2.2",
			want:  &Position{Rows: 3, Cols: 3, Row: 2, Col: 2},
		},
		{
			name:  "valid 4x2 grid",
			input: "4.2.3.1",
			want:  &Position{Rows: 4, Cols: 2, Row: 3, Col: 1},
		},
		{name: "empty string", input: "", wantErr: true},
		{name: "too few parts", input: "2.2.1", wantErr: true},
		{name: "too many parts", input: "2.2.1.1.1", wantErr: true},
		{name: "not a number", input: "a.2.1.1", wantErr: true},
		{name: "rows < 1", input: "0.2.1.1", wantErr: true},
		{name: "row > rows", input: "2.2.3.1", wantErr: true},
		{name: "col > cols", input: "2.2.1.3", wantErr: true},
		{name: "row < 1", input: "2.2.0.1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePosition(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePosition() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && *got != *tt.want {
				t.Errorf("ParsePosition() = %+v, 期望 %+v", got, tt.want)
			}
		})
	}
}

func TestCellCenter(t *testing.T) {
	rect := macro.Region{X: 100, Y: 100, Width: 200, Height: 200}

	tests := []struct {
		name string
		grid *Position
		want macro.Point
	}{
		{
			name: "2x2 top left",
			grid: &Position{Rows: 2, Cols: 2, Row: 1, Col: 1},
			want: macro.Point{X: 150, Y: 150},
		},
		{
			name: "2x2 top right",
			grid: &Position{Rows: 2, Cols: 2, Row: 1, Col: 2},
			want: macro.Point{X: 250, Y: 150},
		},
		{
			name: "2x2 bottom right",
			grid: &Position{Rows: 2, Cols: 2, Row: 2, Col: 2},
			want: macro.Point{X: 250, Y: 250},
		},
		{
			name: "nil grid gives rect center",
			grid: nil,
			want: macro.Point{X: 200, Y: 200},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CellCenter(rect, tt.grid)
			if got != tt.want {
				t.Errorf("CellCenter() = (%d, %d), 期望 (%d, %d)",
					got.X, got.Y, tt.want.X, tt.want.Y)
			}
		})
	}
}

func TestCellCenterFromString(t *testing.T) {
	rect := macro.Region{X: 100, Y: 100, Width: 200, Height: 200}

	pos, err := CellCenterFromString(rect, "2.2.1.1")
	if err != nil {
		t.Fatalf("CellCenterFromString() error = %v", err)
	}
	if pos.X != 150 || pos.Y != 150 {
		t.Errorf("CellCenterFromString() = (%d, %d), 期望 (150, 150)", pos.X, pos.Y)
	}

	// 空字符串返回区域中心
	pos, err = CellCenterFromString(rect, "")
	if err != nil {
		t.Fatalf("CellCenterFromString(\"\") error = %v", err)
	}
	if pos.X != 200 || pos.Y != 200 {
		t.Errorf("CellCenterFromString(\"\") = (%d, %d), 期望 (200, 200)", pos.X, pos.Y)
	}

	// 非法字符串
	if _, err := CellCenterFromString(rect, "invalid"); err == nil {
		t.Error("非法网格字符串应返回错误")
	}
}

// BenchmarkParsePosition 基准测试
func BenchmarkParsePosition(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ParsePosition("3.3.2.2")
	}
}

package macro

import (
	"testing"
)

func TestColorMatch(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Color
		tolerance int
		want      bool
	}{
		{
			name:      "identical colors zero tolerance",
			a:         Color{R: 100, G: 150, B: 200},
			b:         Color{R: 100, G: 150, B: 200},
			tolerance: 0,
			want:      true,
		},
		{
			name:      "within tolerance on all channels",
			a:         Color{R: 100, G: 150, B: 200},
			b:         Color{R: 105, G: 145, B: 210},
			tolerance: 10,
			want:      true,
		},
		{
			name:      "exactly at tolerance boundary",
			a:         Color{R: 100, G: 100, B: 100},
			b:         Color{R: 110, G: 110, B: 110},
			tolerance: 10,
			want:      true,
		},
		{
			name:      "one channel exceeds tolerance",
			a:         Color{R: 100, G: 100, B: 100},
			b:         Color{R: 100, G: 100, B: 111},
			tolerance: 10,
			want:      false,
		},
		{
			name:      "black vs white zero tolerance",
			a:         Color{R: 0, G: 0, B: 0},
			b:         Color{R: 255, G: 255, B: 255},
			tolerance: 0,
			want:      false,
		},
		{
			name:      "black vs white max tolerance",
			a:         Color{R: 0, G: 0, B: 0},
			b:         Color{R: 255, G: 255, B: 255},
			tolerance: 255,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Match(tt.b, tt.tolerance); got != tt.want {
				t.Errorf("Match(%+v, %+v, %d) = %v, 期望 %v", tt.a, tt.b, tt.tolerance, got, tt.want)
			}
			// 匹配关系是对称的
			if got := tt.b.Match(tt.a, tt.tolerance); got != tt.want {
				t.Errorf("Match 应当对称: %+v vs %+v", tt.a, tt.b)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{input: "ff0000", want: Color{R: 255, G: 0, B: 0}},
		{input: "#00ff00", want: Color{R: 0, G: 255, B: 0}},
		{input: "0000FF", want: Color{R: 0, G: 0, B: 255}},
		{input: "1a2b3c", want: Color{R: 0x1a, G: 0x2b, B: 0x3c}},
		{input: "", wantErr: true},
		{input: "fff", wantErr: true},
		{input: "ff00000", wantErr: true},
		{input: "gg0000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHexColor(%q) = %+v, 期望 %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c := Color{R: 0xab, G: 0xcd, B: 0xef}
	parsed, err := ParseHexColor(c.Hex())
	if err != nil {
		t.Fatalf("ParseHexColor(Hex()) error = %v", err)
	}
	if parsed != c {
		t.Errorf("往返转换不一致: %+v -> %s -> %+v", c, c.Hex(), parsed)
	}
}

func TestRegionEmpty(t *testing.T) {
	if (Region{X: 10, Y: 10, Width: 5, Height: 5}).Empty() {
		t.Error("非退化区域不应为 Empty")
	}
	if !(Region{Width: 0, Height: 10}).Empty() {
		t.Error("宽为 0 的区域应为 Empty")
	}
	if !(Region{Width: 10, Height: 0}).Empty() {
		t.Error("高为 0 的区域应为 Empty")
	}
	if !(Region{Width: -1, Height: 10}).Empty() {
		t.Error("宽为负的区域应为 Empty")
	}
}

func TestRegionCenter(t *testing.T) {
	r := Region{X: 100, Y: 200, Width: 50, Height: 30}
	c := r.Center()
	if c.X != 125 || c.Y != 215 {
		t.Errorf("Center() = (%d, %d), 期望 (125, 215)", c.X, c.Y)
	}
}

func TestMinMaxInt(t *testing.T) {
	if got := MinInt(3, 1, 2); got != 1 {
		t.Errorf("MinInt(3, 1, 2) = %d, 期望 1", got)
	}
	if got := MaxInt(3, 1, 2); got != 3 {
		t.Errorf("MaxInt(3, 1, 2) = %d, 期望 3", got)
	}
	if got := MinInt(-5); got != -5 {
		t.Errorf("MinInt(-5) = %d, 期望 -5", got)
	}
}

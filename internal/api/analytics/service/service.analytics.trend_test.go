// Package analyticssvc - Test phần trăm thay đổi và điểm hiệu suất.
package analyticssvc

import "testing"

func TestPercentChange(t *testing.T) {
	cases := []struct {
		name          string
		current, base float64
		want          string
	}{
		{"tăng 50%", 150, 100, "50.00"},
		{"giảm 25%", 75, 100, "-25.00"},
		{"không đổi", 100, 100, "0.00"},
		{"làm tròn 2 chữ số", 100, 3, "3233.33"},
		{"giảm về 0", 0, 200, "-100.00"},
	}
	for _, tc := range cases {
		got := PercentChange(tc.current, tc.base)
		if got == nil {
			t.Errorf("%s: PercentChange(%v, %v) trả về nil", tc.name, tc.current, tc.base)
			continue
		}
		if *got != tc.want {
			t.Errorf("%s: PercentChange(%v, %v) = %q, muốn %q", tc.name, tc.current, tc.base, *got, tc.want)
		}
	}
}

func TestPercentChange_NilWhenBaseZero(t *testing.T) {
	if got := PercentChange(100, 0); got != nil {
		t.Errorf("PercentChange(100, 0) phải trả về nil vì không chia được, nhận: %q", *got)
	}
	if got := PercentChange(0, 0); got != nil {
		t.Errorf("PercentChange(0, 0) phải trả về nil, nhận: %q", *got)
	}
}

func TestPerformanceScore(t *testing.T) {
	cases := []struct {
		name     string
		revenue  float64
		units    int64
		topCount int
		want     int
	}{
		// 50 + 30 + 20 khi đạt trần cả ba thành phần
		{"đạt trần", 10000, 1000, 5, 100},
		{"vượt trần không cộng thêm", 999999, 99999, 9, 100},
		// 5000/10000*50 + 500/1000*30 + 3*4 = 25 + 15 + 12
		{"giữa thang", 5000, 500, 3, 52},
		// 100/10000*50 + 10/1000*30 + 1*4 = 0.5 + 0.3 + 4 = 4.8 -> 5
		{"làm tròn", 100, 10, 1, 5},
	}
	for _, tc := range cases {
		got := PerformanceScore(tc.revenue, tc.units, tc.topCount)
		if got != tc.want {
			t.Errorf("%s: PerformanceScore(%v, %d, %d) = %d, muốn %d",
				tc.name, tc.revenue, tc.units, tc.topCount, got, tc.want)
		}
	}
}

func TestPerformanceScore_ZeroGuard(t *testing.T) {
	if got := PerformanceScore(0, 500, 3); got != 0 {
		t.Errorf("doanh thu 0 phải cho điểm 0, nhận: %d", got)
	}
	if got := PerformanceScore(5000, 0, 3); got != 0 {
		t.Errorf("số lượng bán 0 phải cho điểm 0, nhận: %d", got)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{1.234, 1.23},
		{1.236, 1.24},
		{-1.236, -1.24},
		{100, 100},
	}
	for _, tc := range cases {
		if got := round2(tc.in); got != tc.want {
			t.Errorf("round2(%v) = %v, muốn %v", tc.in, got, tc.want)
		}
	}
}

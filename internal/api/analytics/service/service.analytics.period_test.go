// Package analyticssvc - Test validate và cắt chu kỳ tháng/năm.
package analyticssvc

import (
	"errors"
	"testing"
	"time"

	"pos_insight/internal/common"
)

func TestValidateMonthYear(t *testing.T) {
	currentYear := time.Now().Year()

	valid := []struct {
		month, year int
	}{
		{1, 1900},
		{12, currentYear},
		{6, currentYear + 10},
	}
	for _, tc := range valid {
		if err := ValidateMonthYear(tc.month, tc.year); err != nil {
			t.Errorf("ValidateMonthYear(%d, %d) phải hợp lệ, nhận lỗi: %v", tc.month, tc.year, err)
		}
	}

	invalid := []struct {
		month, year int
	}{
		{0, 2025},
		{13, 2025},
		{-1, 2025},
		{5, 1899},
		{5, currentYear + 11},
	}
	for _, tc := range invalid {
		err := ValidateMonthYear(tc.month, tc.year)
		if err == nil {
			t.Errorf("ValidateMonthYear(%d, %d) phải trả về lỗi", tc.month, tc.year)
			continue
		}
		if !errors.Is(err, common.ErrInvalidPeriod) {
			t.Errorf("ValidateMonthYear(%d, %d) phải trả về ErrInvalidPeriod, nhận: %v", tc.month, tc.year, err)
		}
	}
}

func TestValidateYear(t *testing.T) {
	if err := ValidateYear(1900); err != nil {
		t.Errorf("ValidateYear(1900) phải hợp lệ, nhận lỗi: %v", err)
	}
	if err := ValidateYear(1899); !errors.Is(err, common.ErrInvalidPeriod) {
		t.Errorf("ValidateYear(1899) phải trả về ErrInvalidPeriod, nhận: %v", err)
	}
	if err := ValidateYear(time.Now().Year() + 11); !errors.Is(err, common.ErrInvalidPeriod) {
		t.Errorf("ValidateYear(năm hiện tại + 11) phải trả về ErrInvalidPeriod, nhận: %v", err)
	}
}

func TestMonthRange_HalfOpen(t *testing.T) {
	start, end := MonthRange(5, 2025)

	if start.Year() != 2025 || start.Month() != time.May || start.Day() != 1 {
		t.Errorf("start phải là 2025-05-01, nhận: %v", start)
	}
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Errorf("start phải là 00:00:00, nhận: %v", start)
	}
	if end.Year() != 2025 || end.Month() != time.June || end.Day() != 1 {
		t.Errorf("end phải là 2025-06-01 (đầu tháng kế tiếp), nhận: %v", end)
	}

	// Khoảng nửa mở: end không thuộc chu kỳ
	if !end.After(start) {
		t.Errorf("end (%v) phải sau start (%v)", end, start)
	}
}

func TestMonthRange_DecemberWrapsToNextYear(t *testing.T) {
	_, end := MonthRange(12, 2024)
	if end.Year() != 2025 || end.Month() != time.January || end.Day() != 1 {
		t.Errorf("end của tháng 12/2024 phải là 2025-01-01, nhận: %v", end)
	}
}

func TestMonthRange_MonthLengths(t *testing.T) {
	cases := []struct {
		month, year int
		days        float64
	}{
		{2, 2024, 29}, // năm nhuận
		{2, 2025, 28},
		{4, 2025, 30},
		{7, 2025, 31},
	}
	for _, tc := range cases {
		start, end := MonthRange(tc.month, tc.year)
		got := end.Sub(start).Hours() / 24
		if got != tc.days {
			t.Errorf("MonthRange(%d, %d) phải dài %v ngày, nhận: %v", tc.month, tc.year, tc.days, got)
		}
	}
}

func TestYearRange(t *testing.T) {
	start, end := YearRange(2025)
	if start.Month() != time.January || start.Day() != 1 || start.Year() != 2025 {
		t.Errorf("start phải là 2025-01-01, nhận: %v", start)
	}
	if end.Month() != time.January || end.Day() != 1 || end.Year() != 2026 {
		t.Errorf("end phải là 2026-01-01, nhận: %v", end)
	}
}

func TestPreviousPeriod(t *testing.T) {
	cases := []struct {
		month, year         int
		wantMonth, wantYear int
	}{
		{5, 2025, 4, 2025},
		{1, 2025, 12, 2024}, // tháng 1 lùi về tháng 12 năm trước
		{12, 2025, 11, 2025},
	}
	for _, tc := range cases {
		gotMonth, gotYear := PreviousPeriod(tc.month, tc.year)
		if gotMonth != tc.wantMonth || gotYear != tc.wantYear {
			t.Errorf("PreviousPeriod(%d, %d) = (%d, %d), muốn (%d, %d)",
				tc.month, tc.year, gotMonth, gotYear, tc.wantMonth, tc.wantYear)
		}
	}
}

func TestResolvePeriod(t *testing.T) {
	// Chu kỳ được chỉ định rõ thì giữ nguyên
	month, year := ResolvePeriod(5, 2025)
	if month != 5 || year != 2025 {
		t.Errorf("ResolvePeriod(5, 2025) = (%d, %d), muốn (5, 2025)", month, year)
	}

	// Bỏ trống tháng hoặc năm thì mặc định là chu kỳ hiện tại
	wantMonth, wantYear := CurrentPeriod()
	cases := []struct {
		name        string
		month, year int
	}{
		{"bỏ trống cả hai", 0, 0},
		{"bỏ trống tháng", 0, 2025},
		{"bỏ trống năm", 5, 0},
	}
	for _, tc := range cases {
		month, year := ResolvePeriod(tc.month, tc.year)
		if month != wantMonth || year != wantYear {
			t.Errorf("%s: ResolvePeriod(%d, %d) = (%d, %d), muốn chu kỳ hiện tại (%d, %d)",
				tc.name, tc.month, tc.year, month, year, wantMonth, wantYear)
		}
	}
}

func TestMonthName(t *testing.T) {
	if got := MonthName(1); got != "January" {
		t.Errorf("MonthName(1) = %q, muốn January", got)
	}
	if got := MonthName(12); got != "December" {
		t.Errorf("MonthName(12) = %q, muốn December", got)
	}
	if got := MonthName(0); got != "" {
		t.Errorf("MonthName(0) phải rỗng, nhận: %q", got)
	}
	if got := MonthName(13); got != "" {
		t.Errorf("MonthName(13) phải rỗng, nhận: %q", got)
	}
}

// Package worker - Test tính lịch chạy của Sales Summary Worker.
package worker

import (
	"testing"
	"time"
)

func TestNextRun_BeforeTargetTime(t *testing.T) {
	now := time.Date(2025, 5, 10, 8, 30, 0, 0, time.UTC)
	next := nextRun(now, 14, 0)

	want := time.Date(2025, 5, 10, 14, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("nextRun = %v, muốn %v (cùng ngày vì chưa qua giờ chạy)", next, want)
	}
}

func TestNextRun_AfterTargetTime(t *testing.T) {
	now := time.Date(2025, 5, 10, 14, 30, 0, 0, time.UTC)
	next := nextRun(now, 14, 0)

	want := time.Date(2025, 5, 11, 14, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("nextRun = %v, muốn %v (ngày mai vì đã qua giờ chạy)", next, want)
	}
}

func TestNextRun_ExactlyAtTargetTime(t *testing.T) {
	// Đúng giờ chạy thì lùi sang ngày mai để tránh chạy hai lần
	now := time.Date(2025, 5, 10, 0, 5, 0, 0, time.UTC)
	next := nextRun(now, 0, 5)

	want := time.Date(2025, 5, 11, 0, 5, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("nextRun = %v, muốn %v", next, want)
	}
}

func TestNextRun_MonthBoundary(t *testing.T) {
	now := time.Date(2025, 5, 31, 23, 59, 0, 0, time.UTC)
	next := nextRun(now, 0, 5)

	want := time.Date(2025, 6, 1, 0, 5, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("nextRun = %v, muốn %v (sang đầu tháng sau)", next, want)
	}
}

func TestMonthsToRecompute(t *testing.T) {
	january := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	if got := monthsToRecompute(january); len(got) != 1 || got[0] != 1 {
		t.Errorf("tháng 1 chỉ cần tính lại tháng 1, nhận: %v", got)
	}

	may := time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)
	got := monthsToRecompute(may)
	if len(got) != 5 {
		t.Fatalf("tháng 5 phải tính lại 5 tháng, nhận: %v", got)
	}
	for i, m := range got {
		if m != i+1 {
			t.Errorf("monthsToRecompute[%d] = %d, muốn %d", i, m, i+1)
		}
	}

	december := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	if got := monthsToRecompute(december); len(got) != 12 {
		t.Errorf("tháng 12 phải tính lại đủ 12 tháng, nhận: %d", len(got))
	}
}

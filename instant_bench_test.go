package instant

import (
	"testing"
	"time"

	"github.com/clipperhouse/ntime"
)

func BenchmarkNow(b *testing.B) {
	c := NewSystemClock()
	b.ReportAllocs()
	for b.Loop() {
		c.Now()
	}
}

func BenchmarkNow_Parallel(b *testing.B) {
	c := NewSystemClock()
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Now()
		}
	})
}

func BenchmarkAdd(b *testing.B) {
	now := Now()
	b.ReportAllocs()
	for b.Loop() {
		now.Add(time.Second)
	}
}

func BenchmarkAdd_WallOnly(b *testing.B) {
	now := Now().StripMonotonic()
	b.ReportAllocs()
	for b.Loop() {
		now.Add(time.Second)
	}
}

func BenchmarkSub(b *testing.B) {
	now := Now()
	later := now.Add(time.Second)
	b.ReportAllocs()
	for b.Loop() {
		later.Sub(now)
	}
}

// BenchmarkSub_WallOnly takes the verifying path, which calls Add and Equal.
func BenchmarkSub_WallOnly(b *testing.B) {
	now := Now().StripMonotonic()
	later := now.Add(time.Second)
	b.ReportAllocs()
	for b.Loop() {
		later.Sub(now)
	}
}

func BenchmarkBefore(b *testing.B) {
	now := Now()
	later := now.Add(time.Second)
	b.ReportAllocs()
	for b.Loop() {
		now.Before(later)
	}
}

// Benchmarks for time.Time and ntime.Time, for comparison

func BenchmarkTime_Add(b *testing.B) {
	now := time.Now()
	b.ReportAllocs()
	for b.Loop() {
		now.Add(time.Second)
	}
}

func BenchmarkTime_Sub(b *testing.B) {
	now := time.Now()
	later := now.Add(time.Second)
	b.ReportAllocs()
	for b.Loop() {
		later.Sub(now)
	}
}

func BenchmarkNtime_Now(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		ntime.Now()
	}
}

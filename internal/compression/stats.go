package compression

import (
	"log"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// snapshot cpu dan ram proses untuk log debug
// tidak ada goroutine monitor, proses tetap satu thread
type runStats struct {
	proc      *process.Process
	cpuBefore float64
}

func startStats() *runStats {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return &runStats{}
	}
	s := &runStats{proc: proc}
	if t, err := proc.Times(); err == nil {
		s.cpuBefore = t.User + t.System
	}
	return s
}

func (s *runStats) log(count int, dur time.Duration) {
	if s.proc == nil {
		log.Printf("Converted %d images in %s", count, dur)
		return
	}

	cpuPercent := 0.0
	if t, err := s.proc.Times(); err == nil && dur.Seconds() > 0 {
		cpuPercent = ((t.User + t.System) - s.cpuBefore) / dur.Seconds() * 100
	}

	var rss uint64
	if info, err := s.proc.MemoryInfo(); err == nil && info != nil {
		rss = info.RSS
	}

	log.Printf("Converted %d images in %s | CPU %.2f%% | RSS %.2f MB",
		count, dur, cpuPercent, float64(rss)/1024/1024)
}

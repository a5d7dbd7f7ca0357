package compression

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"guide-images/internal/entity"
)

// prefix baris progres di stdout, sama dengan script lama
const ProgressPrefix = "[optimize-guide-images]"

type Config struct {
	Dir   string
	Debug bool
}

type Service struct {
	Config  Config
	Encoder Encoder
	Out     io.Writer
}

func NewService(cfg Config, enc Encoder, out io.Writer) *Service {
	return &Service{Config: cfg, Encoder: enc, Out: out}
}

// fungsi utama: cek semua file lalu konversi satu per satu
// laporan ukuran baru ditulis setelah semua konversi berhasil
func (s *Service) Run(ctx context.Context) ([]Result, error) {
	steps := entity.Steps(s.Config.Dir)
	fmt.Fprintf(s.Out, "%s root=%s\n", ProgressPrefix, s.Config.Dir)

	// tidak ada konversi sama sekali jika ada file yang hilang
	if err := checkSources(steps); err != nil {
		return nil, err
	}

	stats := startStats()
	startTime := time.Now()

	for _, st := range steps {
		if err := s.processImage(st); err != nil {
			return nil, err
		}
	}

	results, err := measure(steps)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(s.Out, "%s done. sizes:\n", ProgressPrefix)
	writeReport(s.Out, results)

	if s.Config.Debug {
		stats.log(len(steps), time.Since(startTime))
	}
	return results, nil
}

// kumpulkan semua path yang hilang sekaligus
func checkSources(steps []entity.Step) error {
	var missing []string
	for _, st := range steps {
		if _, err := os.Stat(st.Source); err != nil {
			missing = append(missing, st.Source)
		}
	}
	if len(missing) > 0 {
		return &MissingFilesError{Paths: missing}
	}
	return nil
}

// error codec langsung menghentikan proses, tidak ada retry
func (s *Service) processImage(st entity.Step) error {
	mode, err := s.Encoder.Encode(st.Source, st.Target)
	if err != nil {
		return err
	}
	s.debugf("%s: %s -> %s (%s)", st.Name, st.Source, st.Target, mode)
	return nil
}

func (s *Service) debugf(format string, v ...interface{}) {
	if s.Config.Debug {
		log.Printf(format, v...)
	}
}

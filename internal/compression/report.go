package compression

import (
	"fmt"
	"io"
	"os"

	"guide-images/internal/entity"

	"github.com/pkg/errors"
)

// ukuran sebelum dan sesudah konversi dalam byte
type Result struct {
	Step       entity.Step
	SourceSize int64
	TargetSize int64
}

func measure(steps []entity.Step) ([]Result, error) {
	results := make([]Result, 0, len(steps))
	for _, st := range steps {
		src, err := os.Stat(st.Source)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", st.Source)
		}
		dst, err := os.Stat(st.Target)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", st.Target)
		}
		results = append(results, Result{Step: st, SourceSize: src.Size(), TargetSize: dst.Size()})
	}
	return results, nil
}

func kb(n int64) float64 {
	return float64(n) / 1024
}

// satu baris per step: stepN: png=X.XKB  webp=Y.YKB
func writeReport(w io.Writer, results []Result) {
	for _, r := range results {
		fmt.Fprintf(w, "%s: png=%.1fKB  webp=%.1fKB\n", r.Step.Name, kb(r.SourceSize), kb(r.TargetSize))
	}
}

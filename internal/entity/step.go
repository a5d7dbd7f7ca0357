package entity

import (
	"fmt"
	"path/filepath"
)

// jumlah gambar panduan yang selalu dikonversi
const StepCount = 5

// satu pasangan sumber png dan hasil webp
// hasil selalu berada di folder yang sama dengan sumbernya
type Step struct {
	Index  int
	Name   string
	Source string
	Target string
}

// bangun daftar step1..step5 di dalam dir
func Steps(dir string) []Step {
	steps := make([]Step, 0, StepCount)
	for i := 1; i <= StepCount; i++ {
		name := fmt.Sprintf("step%d", i)
		steps = append(steps, Step{
			Index:  i,
			Name:   name,
			Source: filepath.Join(dir, name+".png"),
			Target: filepath.Join(dir, name+".webp"),
		})
	}
	return steps
}

package locate

import (
	"os"
	"path/filepath"
)

// lokasi gambar panduan relatif terhadap root repo
var PicDir = filepath.Join("src", "data", "pic")

// cari folder gambar dengan naik dari setiap direktori awal
type Finder struct {
	Rel string
}

func NewFinder() *Finder {
	return &Finder{Rel: PicDir}
}

// kembalikan folder pertama yang ditemukan
// ok bernilai false jika tidak ada yang cocok
func (f *Finder) Find(startDirs ...string) (string, bool) {
	for _, start := range startDirs {
		if start == "" {
			continue
		}
		abs, err := filepath.Abs(start)
		if err != nil {
			continue
		}

		cur := filepath.Clean(abs)
		for {
			candidate := filepath.Join(cur, f.Rel)
			if info, err := os.Stat(candidate); err == nil && info.IsDir() {
				return candidate, true
			}

			parent := filepath.Dir(cur)
			if parent == cur {
				break
			}
			cur = parent
		}
	}
	return "", false
}

// folder gambar untuk binary ini
// urutan pencarian: folder executable lalu working directory
// jika tidak ketemu pakai <wd>/src/data/pic agar pengecekan file
// tetap melaporkan path yang diharapkan
func (f *Finder) Resolve() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	var starts []string
	if exe, err := os.Executable(); err == nil {
		starts = append(starts, filepath.Dir(exe))
	}
	starts = append(starts, wd)

	if dir, ok := f.Find(starts...); ok {
		return dir
	}

	abs, err := filepath.Abs(filepath.Join(wd, f.Rel))
	if err != nil {
		return filepath.Join(wd, f.Rel)
	}
	return abs
}

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// default dari worker: libvips cukup satu thread
const defaultVipsConcurrency = 1

// pengaturan runtime yang tidak mengubah hasil konversi
type Config struct {
	Debug           bool
	VipsConcurrency int
}

// baca .env jika ada lalu ambil nilai dari environment
// file .env yang tidak ada bukan error
func Load(files ...string) Config {
	godotenv.Load(files...)
	return FromEnv()
}

func FromEnv() Config {
	cfg := Config{VipsConcurrency: defaultVipsConcurrency}

	_, cfg.Debug = os.LookupEnv("DEBUG")

	n, err := strconv.Atoi(os.Getenv("VIPS_CONCURRENCY"))
	if err == nil && n > 0 {
		cfg.VipsConcurrency = n
	}
	return cfg
}

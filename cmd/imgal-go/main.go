package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/imgal/imgal-go/pkg/imgal"
	"github.com/imgal/imgal-go/pkg/imgal/logging"
)

func main() {
	cfg := imgal.ConfigFromEnv()
	if path := os.Getenv("IMGAL_CONFIG"); path != "" {
		fileCfg, err := imgal.LoadConfig(path)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = fileCfg
	}
	cfg.Apply()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	imgal.SetLogger(logging.New(slog.New(handler)))

	log.Printf("imgal-go version: %s (upstream %s)", imgal.WrapperVersion(), imgal.UpstreamVersion())

	defer imgal.Cleanup()

	if err := imgal.Load(); err != nil {
		if errors.Is(err, imgal.ErrResourceMissing) || errors.Is(err, imgal.ErrUnsupportedPlatform) {
			fmt.Printf("native library unavailable: %v\n", err)
			return
		}
		log.Fatalf("unexpected failure loading native library: %v", err)
	}
	log.Printf("loaded %s (%d operations)", imgal.LibraryPath(), len(imgal.Operations()))

	input := []float64{1.0, 5.0, 10.0}
	sum, err := imgal.Sum(input)
	if err != nil {
		log.Fatalf("sum: %v", err)
	}
	fmt.Printf("sum(%v) = %v\n", input, sum)
}

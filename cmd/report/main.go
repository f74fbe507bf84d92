package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"churnboard/adapters/dataset"
	"churnboard/internal/aggregate"
	"churnboard/internal/config"
	"churnboard/internal/profiling"
	"churnboard/internal/report"
)

func main() {
	_ = godotenv.Load()

	var (
		file = flag.String("file", "", "dataset file (defaults to DATA_FILE)")
		out  = flag.String("out", "report.md", "output markdown path")
	)
	flag.Parse()

	path := *file
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			log.Fatal(err)
		}
		path = cfg.Data.File
	}

	records, diag, err := dataset.NewSource(path).Load()
	if err != nil {
		log.Fatal(err)
	}

	summary := aggregate.Summarize(records)
	profile, err := profiling.NewProfiler().Profile(records)
	if err != nil {
		log.Fatal(err)
	}

	md := report.Render(summary, diag, profile)
	if err := os.WriteFile(*out, []byte(md), 0644); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s (%d customers, churn rate %.2f%%)", *out, summary.TotalCustomers, summary.ChurnRate*100)
}

package main

import (
	"flag"
	"log"

	"github.com/caseflow-kz/caseflow-backend/cmd"
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run database migrations")
	shouldRunServer := flag.Bool("server", false, "Run the HTTP server")
	shouldRunScheduler := flag.Bool("scheduler", false, "Run the cron job scheduler")
	shouldRunSweeps := flag.Bool("sweeps", false, "Run all reminder sweeps once and exit")
	flag.Parse()

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunServer {
		if err := cmd.RunServer(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunScheduler {
		if err := cmd.RunJobScheduler(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunSweeps {
		if err := cmd.RunSweeps(); err != nil {
			log.Fatal(err)
		}
	}
}

package cron

import (
	"log"

	"github.com/dagger983/Umpire11-Backend/services"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic roster rescoring job.
type Scheduler struct {
	cron           *cron.Cron
	scoringService *services.ScoringService
}

func NewScheduler(scoringService *services.ScoringService) *Scheduler {
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:           c,
		scoringService: scoringService,
	}
}

// Start schedules the rescoring job at minute 0 of every hour.
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	_, err := s.cron.AddFunc("0 0 * * * *", s.runScoring)
	if err != nil {
		log.Printf("Error scheduling roster scoring job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop shuts the scheduler down; a running job finishes first.
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

func (s *Scheduler) runScoring() {
	log.Println("Running roster scoring job...")

	count, err := s.scoringService.GetRosterCount()
	if err != nil {
		log.Printf("Error counting rosters: %v", err)
		return
	}

	if count == 0 {
		log.Println("No rosters to score")
		return
	}

	if err := s.scoringService.RecalculateAll(); err != nil {
		log.Printf("Error during roster scoring: %v", err)
		return
	}

	log.Println("Roster scoring job completed successfully")
}

// RunNow triggers the scoring job immediately (useful for testing).
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering roster scoring job...")
	s.runScoring()
}

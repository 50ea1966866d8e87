package cron

import (
	"circle/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine          *cron.Cron
	weeklyDigestJob *job.WeeklyDigestJob
}

func NewCronManager(weeklyDigestJob *job.WeeklyDigestJob) *Manager {
	return &Manager{
		engine:          cron.New(cron.WithSeconds()),
		weeklyDigestJob: weeklyDigestJob,
	}
}

// RegisterJobs wires every scheduled job into the engine
func (s *Manager) RegisterJobs() error {
	// Monday 08:00
	if _, err := s.engine.AddJob("0 0 8 * * 1", s.weeklyDigestJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}

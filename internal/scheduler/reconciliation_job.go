// Package scheduler contém os serviços de agendamento dos jobs de reconciliação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrJobAlreadyRunning = errors.New("job já está em execução")

// JobFunc executa uma varredura completa e devolve o resumo da execução
type JobFunc func(ctx context.Context) (any, error)

type ReconciliationJobConfig struct {
	Name         string
	CronSchedule string
	SyncEnabled  bool
}

type ReconciliationJobService struct {
	scheduler           *gocron.Scheduler
	config              ReconciliationJobConfig
	run                 JobFunc
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          any
	lastError           string
	now                 func() time.Time
}

func NewReconciliationJobService(cfg ReconciliationJobConfig, location *time.Location, run JobFunc) *ReconciliationJobService {
	if location == nil {
		location = time.UTC
	}

	logrus.WithFields(logrus.Fields{
		"job":           cfg.Name,
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.SyncEnabled,
	}).Info("Configuração do agendador carregada")

	return &ReconciliationJobService{
		scheduler: gocron.NewScheduler(location),
		config:    cfg,
		run:       run,
		now:       time.Now,
	}
}

func (s *ReconciliationJobService) Name() string {
	return s.config.Name
}

func (s *ReconciliationJobService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.WithField("job", s.config.Name).Info("Cron desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"job":  s.config.Name,
		"cron": s.config.CronSchedule,
	}).Info("Iniciando cron")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunNow(ctx); err != nil && !errors.Is(err, ErrJobAlreadyRunning) {
			logrus.WithError(err).WithField("job", s.config.Name).Error("Erro na execução agendada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar job %s: %w", s.config.Name, err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("job", s.config.Name).Info("Parando cron")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa o job de forma síncrona; execuções sobrepostas do mesmo job são recusadas
func (s *ReconciliationJobService) RunNow(ctx context.Context) (any, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithField("job", s.config.Name).Warn("Job já está em execução")
		return nil, ErrJobAlreadyRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	logrus.WithField("job", s.config.Name).Info("Iniciando execução do job")

	result, err := s.run(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastResult = result
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return nil, errors.Wrapf(err, "job %s", s.config.Name)
	}

	logrus.WithFields(logrus.Fields{
		"job":    s.config.Name,
		"result": result,
	}).Info("Execução do job concluída")

	return result, nil
}

// TriggerManualSync dispara o job em background
func (s *ReconciliationJobService) TriggerManualSync() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithField("job", s.config.Name).Info("Job já em andamento, ignorando solicitação manual")
		return ErrJobAlreadyRunning
	}
	s.syncMutex.Unlock()

	logrus.WithField("job", s.config.Name).Info("Iniciando execução manual em background")
	go func() {
		if _, err := s.RunNow(context.Background()); err != nil && !errors.Is(err, ErrJobAlreadyRunning) {
			logrus.WithError(err).WithField("job", s.config.Name).Error("Erro na execução manual")
		}
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *ReconciliationJobService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
		"last_error":             s.lastError,
	}
}

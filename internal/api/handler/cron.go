package handler

import (
	"context"
	"net/http"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-control-api/internal/scheduler"
	"github.com/vfg2006/campaign-control-api/pkg/apiErrors"
)

// CronJob é o que a API precisa de um job agendado
type CronJob interface {
	RunNow(ctx context.Context) (any, error)
	TriggerManualSync() error
	GetStatus() map[string]any
}

// CronJobServices indexa os jobs pelo nome usado na rota
type CronJobServices map[string]CronJob

func NewCronJobServices(jobs scheduler.Jobs) CronJobServices {
	services := make(CronJobServices, len(jobs))
	for name, job := range jobs {
		services[name] = job
	}
	return services
}

func (s CronJobServices) names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunCronJob executa um job de reconciliação sob demanda. Por padrão aguarda
// o fim e devolve o resumo; com ?async=true apenas dispara em background.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := pathParam(r, "type")
		logrus.WithField("job", cronType).Info("INIT - RunCronJob")

		job, ok := services[cronType]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnknownJob, "Tipo de cron job inválido", map[string]any{
				"accepted": services.names(),
			})
			return
		}

		if r.URL.Query().Get("async") == "true" {
			if err := job.TriggerManualSync(); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, "Job já está em execução", nil)
				return
			}

			writeJSON(w, http.StatusAccepted, map[string]any{
				"message": "Cron job iniciada com sucesso",
				"type":    cronType,
			})
			return
		}

		result, err := job.RunNow(r.Context())
		if err != nil {
			if errors.Is(err, scheduler.ErrJobAlreadyRunning) {
				apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, "Job já está em execução", nil)
				return
			}
			logrus.WithError(err).WithField("job", cronType).Error("Erro ao executar cron job")
			apiErrors.WriteError(w, apiErrors.ErrJobExecutionFailure, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"type":   cronType,
			"result": result,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}

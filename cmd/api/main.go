package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-control-api/infrastructure/database/migrations"
	"github.com/vfg2006/campaign-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-control-api/infrastructure/repository"
	"github.com/vfg2006/campaign-control-api/internal/api"
	"github.com/vfg2006/campaign-control-api/internal/api/handler"
	"github.com/vfg2006/campaign-control-api/internal/config"
	"github.com/vfg2006/campaign-control-api/internal/scheduler"
	"github.com/vfg2006/campaign-control-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-control-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-control-api/internal/usecases/reconciling"
	"github.com/vfg2006/campaign-control-api/internal/usecases/spending"
	"github.com/vfg2006/campaign-control-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.WithFields(logrus.Fields{
		"log_level": logrus.GetLevel().String(),
		"timezone":  cfg.App.Location.String(),
	}).Info("Configuração carregada")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.MigrationsEnabled {
		if err := migrations.Migrate(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrations")
		}
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	brandRepo := repository.NewBrandRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	scheduleRepo := repository.NewScheduleRepository(pgConn)
	spendLogRepo := repository.NewSpendLogRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	campaignService := campaigning.NewService(brandRepo, campaignRepo, scheduleRepo, cfg)
	spender := spending.NewService(campaignRepo, spendLogRepo)
	reconciler := reconciling.NewService(campaignRepo, cfg)

	// Os mesmos jobs atendem o agendamento periódico e a execução sob demanda
	jobs := scheduler.NewJobs(reconciler, cfg)
	if err := jobs.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar os agendadores de reconciliação")
	}
	logrus.WithField("jobs", len(jobs)).Info("Agendadores de reconciliação iniciados")

	server, err := api.New(
		cfg,
		authenticator,
		campaignService,
		spender,
		handler.NewCronJobServices(jobs),
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource garante que o .env da raiz seja encontrado em execução local
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	if err := os.Chdir(dir); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do binário")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	return conn
}

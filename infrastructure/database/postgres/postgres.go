package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-control-api/internal/config"
)

// Connection é o pool compartilhado pelos repositórios
type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir conexão com o banco")
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxOpenConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "banco de dados indisponível")
	}

	logrus.WithField("max_open_conns", cfg.MaxOpenConns).Info("Conexão com o Postgres estabelecida")

	return &Connection{DB: db}, nil
}

// RunInTransaction executa fn numa transação READ COMMITTED. As mutações por
// campanha dependem de SELECT ... FOR UPDATE dentro de fn para serializar
// escritores concorrentes sobre a mesma linha.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return errors.Wrap(err, "erro ao iniciar transação")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logrus.WithError(rbErr).Error("Erro ao desfazer transação")
		}
		return err
	}

	return errors.Wrap(tx.Commit(), "erro ao confirmar transação")
}

// Command migrate applies the versioned schema and optionally seeds a catalog and a staff account.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/user"
	"github.com/Fabri-com/esteticas/internal/infra/db"
	sqlc "github.com/Fabri-com/esteticas/internal/infra/sqlc/generated"
	"github.com/Fabri-com/esteticas/internal/infra/uow"
	"github.com/Fabri-com/esteticas/internal/pkg/config"
	"github.com/Fabri-com/esteticas/internal/pkg/errs"
	"github.com/Fabri-com/esteticas/internal/pkg/password"
	"github.com/Fabri-com/esteticas/internal/usecase/shared"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const migrateTimeout = 2 * time.Minute

type adminConfig struct {
	Email    string `envconfig:"ADMIN_EMAIL"`
	Password string `envconfig:"ADMIN_PASSWORD"`
	Role     string `envconfig:"ADMIN_ROLE" default:"admin"`
}

func main() {
	dir := flag.String("dir", "migrations", "directory holding the versioned migrations and atlas.sum")
	seedFile := flag.String("seed", "", "optional SQL file applied after migrating (e.g. seeds/services.sql)")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(logger, *dir, *seedFile, *atlasBin); err != nil {
		logger.Error("migration failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(logger *slog.Logger, dir, seedFile, atlasBin string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errs.Wrap(err, "failed to load .env file")
	}
	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		return errs.Wrap(err, "failed to process db config")
	}
	var admin adminConfig
	if err := envconfig.Process("", &admin); err != nil {
		return errs.Wrap(err, "failed to process admin config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	if err := applyMigrations(ctx, logger, dbCfg, dir, atlasBin); err != nil {
		return err
	}

	pool, cleanup, err := db.Connect(dbCfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if seedFile != "" {
		if err := applySeed(ctx, pool, seedFile); err != nil {
			return err
		}
		logger.Info("seed applied", "file", seedFile)
	}

	if admin.Email != "" {
		id, err := upsertStaff(ctx, pool, admin)
		if err != nil {
			return err
		}
		logger.Info("staff account ready", "user_id", id.String(), "role", admin.Role)
	}
	return nil
}

func applyMigrations(ctx context.Context, logger *slog.Logger, dbCfg config.DBConfig, dir, atlasBin string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return errs.Wrap(err, "failed to resolve migrations dir")
	}
	client, err := atlasexec.NewClient(".", atlasBin)
	if err != nil {
		return errs.Wrap(err, "failed to init atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DirURL: "file://" + absDir,
	})
	if err != nil {
		return errs.Wrap(err, "atlas migrate apply")
	}
	logger.Info("migrations applied", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
	return nil
}

func applySeed(ctx context.Context, pool *pgxpool.Pool, file string) error {
	sql, err := os.ReadFile(file)
	if err != nil {
		return errs.Wrapf(err, "failed to read seed %s", file)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return errs.Wrapf(err, "failed to apply seed %s", file)
	}
	return nil
}

func upsertStaff(ctx context.Context, pool *pgxpool.Pool, admin adminConfig) (id uuid.UUID, err error) {
	email, err := user.NewEmail(admin.Email)
	if err != nil {
		return id, errs.Wrap(err, "invalid ADMIN_EMAIL")
	}
	if _, err := user.NewPassword(admin.Password); err != nil {
		return id, errs.Wrap(err, "invalid ADMIN_PASSWORD")
	}
	role, err := user.NewRole(admin.Role)
	if err != nil {
		return id, errs.Wrap(err, "invalid ADMIN_ROLE")
	}
	hash, err := password.HashPassword(admin.Password)
	if err != nil {
		return id, errs.Wrap(err, "failed to hash admin password")
	}

	u := user.NewUser(email, hash, role)
	err = uow.NewPostgresUoW(pool, sqlc.New()).Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		upserted, err := tx.Users().Upsert(ctx, tx.DB(), u)
		if err != nil {
			return err
		}
		id = upserted
		return nil
	})
	return id, err
}

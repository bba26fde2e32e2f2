package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/migrations"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Применить схему базы данных и создать конфигурацию по умолчанию",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), *configPath)
		},
	}
}

// runMigrate
// 1. Применяет схему в одной транзакции
// 2. Записывает конфигурацию ресторана по умолчанию, если ее нет
func runMigrate(ctx context.Context, configPath string) error {
	a, err := newApp(configPath, false)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.txManager.Do(ctx, func(ctx context.Context) error {
		return migrations.Migrate(ctx, a.wrappedDB, a.log)
	}); err != nil {
		a.log.Error("Migrate: failed: %v", err)
		return err
	}

	created, err := a.newConfigService().EnsureDefault(ctx)
	if err != nil {
		return err
	}
	if !created {
		a.log.Info("Migrate: restaurant config already exists, keeping it")
	}

	return nil
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tableRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/table"
	tablesService "github.com/m04kA/SMC-ReservationService/internal/service/tables"
)

func newSeedTablesCmd(configPath *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed-tables",
		Short: "Заменить схему зала столами из YAML-файла",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeedTables(cmd.Context(), *configPath, file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML-файл со столами")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runSeedTables(ctx context.Context, configPath, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open layout file: %w", err)
	}
	defer f.Close()

	layout, err := tablesService.ParseLayout(f)
	if err != nil {
		return err
	}

	a, err := newApp(configPath, false)
	if err != nil {
		return err
	}
	defer a.close()

	svc := tablesService.NewService(tableRepo.NewRepository(a.wrappedDB), a.txManager, a.log)
	resp, err := svc.ReplaceLayout(ctx, layout)
	if err != nil {
		return err
	}

	a.log.Info("SeedTables: %d tables loaded from %s, %d deactivated", len(resp.Tables), file, resp.Deactivated)
	return nil
}

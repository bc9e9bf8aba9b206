package main

import (
	"fmt"

	"github.com/Veraticus/faseed/internal/cli"
	"github.com/Veraticus/faseed/internal/common"
	"github.com/Veraticus/faseed/internal/storage"
	"github.com/spf13/cobra"
)

func schemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect or create the application tables",
		Long: `The finance application owns its schema and creates it on first run. These
commands exist for development databases and CI, where the app never ran.`,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the accounts, transactions and income_sources tables",
		Long: `Create the database file and the application tables when they are missing.
Existing tables and rows are left alone.`,
		RunE: runSchemaInit,
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show which application tables exist",
		RunE:  runSchemaStatus,
	}

	cmd.AddCommand(initCmd, statusCmd)
	return cmd
}

func runSchemaInit(cmd *cobra.Command, _ []string) error {
	dbPath := databasePath()
	common.LogInfo("Creating application schema", common.Fields{"database": dbPath})

	store, err := openStorage(false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closeStorage(store)

	if err := store.EnsureSchema(cmd.Context()); err != nil {
		return fmt.Errorf("schema creation failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
		fmt.Sprintf("Schema ready at version %d: %s", storage.ExpectedSchemaVersion, dbPath)))
	return nil
}

func runSchemaStatus(cmd *cobra.Command, _ []string) error {
	store, err := openStorage(true)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle("Database "+store.Path()))

	for _, table := range storage.ApplicationTables {
		ok, err := store.HasTable(cmd.Context(), table)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintln(out, cli.FormatSuccess(table))
		} else {
			fmt.Fprintln(out, cli.FormatError(table+" (missing)"))
		}
	}
	return nil
}

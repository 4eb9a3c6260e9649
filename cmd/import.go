package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"lab-inventory/core/config"
	"lab-inventory/core/database"
	"lab-inventory/core/logger"
	"lab-inventory/feature/catalog"
	"lab-inventory/feature/upload"

	catalogmodels "lab-inventory/feature/catalog/models"
	uploadmodels "lab-inventory/feature/upload/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var importFile string

// importCmd is the parent command for offline bulk imports.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk-import rows from a JSON file without running the server",
}

// importMaterialsCmd imports material rows from a JSON file.
var importMaterialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "Import material rows (create or update by code)",
	Long: `Import material rows from a JSON file.

The file holds an array of rows with the same fields the upload endpoint
accepts:

  [{"material_code": "RES001", "material_name": "Resistor", "total_qty": 100, "available_qty": 100}]

Rows are applied independently; the command prints the aggregate outcome and
fails only when no row could be imported.`,
	RunE: runImportMaterials,
}

// importUsersCmd imports user rows from a JSON file.
var importUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Import user rows (create-only, duplicates rejected)",
	RunE:  runImportUsers,
}

func init() {
	importCmd.PersistentFlags().StringVar(&importFile, "file", "", "Path to the JSON rows file (required)")
	_ = importCmd.MarkPersistentFlagRequired("file")

	importCmd.AddCommand(importMaterialsCmd)
	importCmd.AddCommand(importUsersCmd)
	RootCmd.AddCommand(importCmd)
}

// newImportService wires an upload service against the configured database.
// Report archiving is skipped for offline imports.
func newImportService() (*upload.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := migrateImportTables(db); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	svc := upload.NewService(db, catalog.NewStore(db), nil, cfg.Storage, l)
	return svc, l, nil
}

func migrateImportTables(db *gorm.DB) error {
	return db.AutoMigrate(&catalogmodels.Material{}, &uploadmodels.User{})
}

func runImportMaterials(cmd *cobra.Command, args []string) error {
	svc, l, err := newImportService()
	if err != nil {
		return err
	}

	var rows []upload.MaterialRow
	if err := readRowsFile(importFile, &rows); err != nil {
		return err
	}

	out, err := svc.UploadMaterials(context.Background(), rows)
	if err != nil {
		return err
	}

	printOutcome(l, out)
	if out.Succeeded() == 0 {
		return fmt.Errorf("no materials were imported (%s)", out.Summary())
	}
	return nil
}

func runImportUsers(cmd *cobra.Command, args []string) error {
	svc, l, err := newImportService()
	if err != nil {
		return err
	}

	var rows []upload.UserRow
	if err := readRowsFile(importFile, &rows); err != nil {
		return err
	}

	out, err := svc.UploadUsers(context.Background(), rows)
	if err != nil {
		return err
	}

	printOutcome(l, out)
	if out.Succeeded() == 0 {
		return fmt.Errorf("no users were imported (%s)", out.Summary())
	}
	return nil
}

func readRowsFile(path string, into any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read rows file: %w", err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("failed to parse rows file: %w", err)
	}
	return nil
}

func printOutcome(l *zap.Logger, out *upload.Outcome) {
	l.Info("Import finished",
		zap.Int("created", out.Created),
		zap.Int("updated", out.Updated),
		zap.Int("failed", out.Failed),
	)
	for _, line := range out.Errors {
		l.Warn(line)
	}
}

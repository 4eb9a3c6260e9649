package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"lab-inventory/core/errs"
	"lab-inventory/core/storage"
	"lab-inventory/feature/catalog"
	catalogmodels "lab-inventory/feature/catalog/models"
	"lab-inventory/feature/upload/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrArchiveDisabled is returned by report queries when archiving is off.
var ErrArchiveDisabled = errors.New("report archive is not enabled")

// reportPrefix is where outcome reports live inside the archive bucket.
const reportPrefix = "reports/uploads/"

// Spreadsheet data starts below the header row, so the first material row is
// row 2 in the file the admin is looking at. User batches are plain lists
// and stay 1-indexed.
const (
	materialRowOffset = 2
	userRowOffset     = 1
)

// Service is the bulk reconciler. Each row of a batch is processed
// independently: validation or storage failures reject that row and the
// batch moves on, maximizing forward progress over messy spreadsheet data.
type Service struct {
	catalog    *catalog.Store
	users      *UserStore
	archive    storage.Client
	archiveCfg storage.Config
	logger     *zap.Logger
}

// NewService creates a new upload service. archive may be nil when report
// archiving is disabled.
func NewService(db *gorm.DB, catalogStore *catalog.Store, archive storage.Client, archiveCfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		catalog:    catalogStore,
		users:      NewUserStore(db),
		archive:    archive,
		archiveCfg: archiveCfg,
		logger:     logger,
	}
}

// UploadMaterials reconciles a batch of material rows against the catalog.
// Rows with a known code are overwritten in place (idempotent re-import);
// unknown codes create new records. Only an empty batch is a batch-level
// error; per-row failures land in the outcome.
func (s *Service) UploadMaterials(ctx context.Context, rows []MaterialRow) (*Outcome, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no material rows provided", errs.ErrValidationFailed)
	}

	out := &Outcome{}
	for i, row := range rows {
		rowNum := i + materialRowOffset
		s.reconcileMaterial(ctx, rowNum, row, out)
	}

	s.archiveOutcome(ctx, "materials", out)
	s.logger.Info("Materials upload processed",
		zap.Int("rows", len(rows)),
		zap.Int("created", out.Created),
		zap.Int("updated", out.Updated),
		zap.Int("failed", out.Failed),
	)

	return out, nil
}

func (s *Service) reconcileMaterial(ctx context.Context, rowNum int, row MaterialRow, out *Outcome) {
	m := row.normalize()

	if m.Code == "" || m.Name == "" {
		out.rejected(rowNum, "missing required fields (material_code or material_name)")
		return
	}

	// The quantity invariant is enforced at ingestion too, not only at
	// runtime mutation.
	if m.AvailableQty > m.TotalQty {
		out.rejected(rowNum, fmt.Sprintf("available quantity (%d) exceeds total quantity (%d)", m.AvailableQty, m.TotalQty))
		return
	}

	_, err := s.catalog.Find(ctx, m.Code)
	switch {
	case err == nil:
		if err := s.catalog.OverwriteByCode(ctx, m.Code, m.Name, m.TotalQty, m.AvailableQty); err != nil {
			out.rejected(rowNum, err.Error())
			return
		}
		out.updated(rowNum)

	case errors.Is(err, errs.ErrMaterialNotFound):
		record := &catalogmodels.Material{
			Code:         m.Code,
			Name:         m.Name,
			TotalQty:     m.TotalQty,
			AvailableQty: m.AvailableQty,
		}
		if err := s.catalog.Create(ctx, record); err != nil {
			out.rejected(rowNum, err.Error())
			return
		}
		out.created(rowNum)

	default:
		out.rejected(rowNum, err.Error())
	}
}

// UploadUsers registers a batch of user rows. Unlike materials, the user
// policy is create-only: an existing username rejects the row.
func (s *Service) UploadUsers(ctx context.Context, rows []UserRow) (*Outcome, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no user rows provided", errs.ErrValidationFailed)
	}

	out := &Outcome{}
	for i, row := range rows {
		rowNum := i + userRowOffset
		s.reconcileUser(ctx, rowNum, row, out)
	}

	s.archiveOutcome(ctx, "users", out)
	s.logger.Info("Users upload processed",
		zap.Int("rows", len(rows)),
		zap.Int("created", out.Created),
		zap.Int("failed", out.Failed),
	)

	return out, nil
}

func (s *Service) reconcileUser(ctx context.Context, rowNum int, row UserRow, out *Outcome) {
	u := row.normalize()

	if u.Username == "" || u.Password == "" {
		out.rejected(rowNum, "missing required fields (username or password)")
		return
	}

	_, err := s.users.FindByUsername(ctx, u.Username)
	switch {
	case err == nil:
		out.rejected(rowNum, fmt.Sprintf("username already exists: %s", u.Username))

	case errors.Is(err, ErrUserNotFound):
		record := &models.User{
			Username:   u.Username,
			Password:   u.Password,
			FullName:   u.FullName,
			Mail:       u.Mail,
			RollNo:     u.RollNo,
			Department: u.Department,
		}
		if err := s.users.Create(ctx, record); err != nil {
			out.rejected(rowNum, err.Error())
			return
		}
		out.created(rowNum)

	default:
		out.rejected(rowNum, err.Error())
	}
}

// archiveOutcome writes the outcome report to object storage. Best effort:
// failures are logged and never change the result of the upload.
func (s *Service) archiveOutcome(ctx context.Context, kind string, out *Outcome) {
	if s.archive == nil || !s.archiveCfg.Enabled {
		return
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		s.logger.Warn("Failed to encode upload report", zap.Error(err))
		return
	}

	objectName := fmt.Sprintf("%s%s-%s.json",
		reportPrefix, time.Now().UTC().Format("20060102T150405Z"), kind)

	_, err = s.archive.PutObject(ctx, s.archiveCfg.Bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		s.logger.Warn("Failed to archive upload report",
			zap.Error(err),
			zap.String("object", objectName),
		)
		return
	}

	s.logger.Info("Upload report archived", zap.String("object", objectName))
}

func (s *Service) reportObject(name string) (string, error) {
	if s.archive == nil || !s.archiveCfg.Enabled {
		return "", ErrArchiveDisabled
	}
	if name == "" || strings.Contains(name, "/") {
		return "", fmt.Errorf("%w: invalid report name %q", errs.ErrValidationFailed, name)
	}
	return reportPrefix + name, nil
}

// ListReports returns the names of all archived outcome reports.
func (s *Service) ListReports(ctx context.Context) ([]string, error) {
	if s.archive == nil || !s.archiveCfg.Enabled {
		return nil, ErrArchiveDisabled
	}

	names := []string{}
	for obj := range s.archive.ListObjects(ctx, s.archiveCfg.Bucket, minio.ListObjectsOptions{
		Prefix:    reportPrefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list upload reports: %w", obj.Err)
		}
		names = append(names, strings.TrimPrefix(obj.Key, reportPrefix))
	}
	return names, nil
}

// FetchReport returns the raw JSON of one archived outcome report.
func (s *Service) FetchReport(ctx context.Context, name string) ([]byte, error) {
	object, err := s.reportObject(name)
	if err != nil {
		return nil, err
	}

	rc, err := s.archive.GetObject(ctx, s.archiveCfg.Bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upload report %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload report %s: %w", name, err)
	}
	return data, nil
}

// DeleteReport removes one archived outcome report.
func (s *Service) DeleteReport(ctx context.Context, name string) error {
	object, err := s.reportObject(name)
	if err != nil {
		return err
	}

	if err := s.archive.RemoveObject(ctx, s.archiveCfg.Bucket, object, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete upload report %s: %w", name, err)
	}
	return nil
}

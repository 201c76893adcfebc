package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/cmlabs-hris/leave-import-go/internal/domain/leaveimport"
	"github.com/cmlabs-hris/leave-import-go/internal/handler/http/response"
	"github.com/cmlabs-hris/leave-import-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/leave-import-go/internal/pkg/storage"
)

type LeaveImportHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	Template(w http.ResponseWriter, r *http.Request)
	GetBatch(w http.ResponseWriter, r *http.Request)
	ListBatches(w http.ResponseWriter, r *http.Request)
}

type LeaveImportHandlerImpl struct {
	importService  leaveimport.ImportService
	reader         *spreadsheet.Reader
	fileStorage    storage.FileStorage
	maxUploadBytes int64
}

func NewLeaveImportHandler(importService leaveimport.ImportService, reader *spreadsheet.Reader, fileStorage storage.FileStorage, maxUploadBytes int64) LeaveImportHandler {
	return &LeaveImportHandlerImpl{
		importService:  importService,
		reader:         reader,
		fileStorage:    fileStorage,
		maxUploadBytes: maxUploadBytes,
	}
}

// Import implements LeaveImportHandler.
func (h *LeaveImportHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	companyID, userID, ok := h.identity(w, r)
	if !ok {
		return
	}

	data, filename, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	rows, startRow, err := h.reader.Read(bytes.NewReader(data), filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Archive the raw upload for auditing before touching the database.
	storedPath := fmt.Sprintf("imports/%s/%s_%s", companyID, uuid.NewString(), filepath.Base(filename))
	if _, err := h.fileStorage.Upload(ctx, bytes.NewReader(data), storedPath, r.Header.Get("Content-Type")); err != nil {
		slog.Error("Failed to archive import file", "error", err)
		response.InternalServerError(w, "Failed to store import file")
		return
	}

	summary, err := h.importService.ImportLeaveRequests(ctx, leaveimport.ImportRequest{
		CompanyID:      companyID,
		CreatedBy:      userID,
		SourceFilePath: storedPath,
		Rows:           rows,
		StartRow:       startRow,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := fmt.Sprintf("%d imported, %d duplicates skipped, %d rejected",
		summary.ImportedCount, summary.DuplicateCount, summary.RejectedCount)
	response.Created(w, message, summary)
}

// Preview implements LeaveImportHandler. Parses the upload and reports what
// an import would do, without persisting anything.
func (h *LeaveImportHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	companyID, _, ok := h.identity(w, r)
	if !ok {
		return
	}

	data, filename, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	rows, startRow, err := h.reader.Read(bytes.NewReader(data), filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.importService.Preview(r.Context(), companyID, rows, startRow)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Template implements LeaveImportHandler.
func (h *LeaveImportHandlerImpl) Template(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="leave_import_template.xlsx"`)

	if err := h.importService.WriteTemplate(w); err != nil {
		slog.Error("Failed to write import template", "error", err)
	}
}

// GetBatch implements LeaveImportHandler.
func (h *LeaveImportHandlerImpl) GetBatch(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "id")
	if batchID == "" {
		response.BadRequest(w, "Batch ID is required", nil)
		return
	}

	batch, err := h.importService.GetBatch(r.Context(), batchID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaveimport.ToImportBatchResponse(batch))
}

// ListBatches implements LeaveImportHandler.
func (h *LeaveImportHandlerImpl) ListBatches(w http.ResponseWriter, r *http.Request) {
	companyID, _, ok := h.identity(w, r)
	if !ok {
		return
	}

	batches, err := h.importService.ListBatches(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]leaveimport.ImportBatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, leaveimport.ToImportBatchResponse(b))
	}
	response.Success(w, out)
}

// identity pulls company and user from the JWT claims.
func (h *LeaveImportHandlerImpl) identity(w http.ResponseWriter, r *http.Request) (companyID, userID string, ok bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		slog.Error("Failed to get JWT claims", "error", err)
		response.Unauthorized(w, "Unauthorized")
		return "", "", false
	}

	companyID, _ = claims["company_id"].(string)
	userID, _ = claims["user_id"].(string)
	if companyID == "" || userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return "", "", false
	}
	return companyID, userID, true
}

// readUpload reads the multipart "file" field, bounded by the configured
// upload limit.
func (h *LeaveImportHandlerImpl) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		response.BadRequest(w, "Invalid or oversized upload", nil)
		return nil, "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Import file is required", nil)
		return nil, "", false
	}
	defer file.Close()

	data := make([]byte, 0, header.Size)
	buf := bytes.NewBuffer(data)
	if _, err := buf.ReadFrom(file); err != nil {
		slog.Error("Failed to read upload", "error", err)
		response.InternalServerError(w, "Failed to read import file")
		return nil, "", false
	}

	return buf.Bytes(), header.Filename, true
}

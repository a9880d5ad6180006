package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/riskibarqy/club-stats/internal/domain/importing"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

const maxMultipartMemory = 32 << 20

// Import loads the three datasets from a JSON body in one atomic run.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Import")
	defer span.End()

	var req importRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.runImport(w, r.WithContext(ctx), usecase.ImportInput{
		Players:     rowsFromJSON(req.Players),
		Matches:     rowsFromJSON(req.Matches),
		Appearances: rowsFromJSON(req.Appearances),
	})
}

// ImportCSV accepts a multipart form with optional players, matches and
// appearances CSV files.
func (h *Handler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportCSV")
	defer span.End()

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid multipart form: %v", usecase.ErrInvalidInput, err))
		return
	}

	var input usecase.ImportInput
	targets := []struct {
		dataset importing.Dataset
		rows    *[]importing.Row
	}{
		{importing.DatasetPlayers, &input.Players},
		{importing.DatasetMatches, &input.Matches},
		{importing.DatasetAppearances, &input.Appearances},
	}
	for _, target := range targets {
		rows, err := readCSVField(r, string(target.dataset))
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		*target.rows = rows
	}

	h.runImport(w, r.WithContext(ctx), input)
}

func (h *Handler) runImport(w http.ResponseWriter, r *http.Request, input usecase.ImportInput) {
	ctx := r.Context()

	summary, err := h.importService.Import(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "import failed",
			"players", len(input.Players),
			"matches", len(input.Matches),
			"appearances", len(input.Appearances),
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, importSummaryToDTO(summary))
}

func readCSVField(r *http.Request, field string) ([]importing.Row, error) {
	file, _, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s file: %v", usecase.ErrInvalidInput, field, err)
	}
	defer file.Close()

	rows, err := importing.ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s file: %v", usecase.ErrParse, field, err)
	}
	return rows, nil
}

// Export streams one dataset as CSV in the same layout Import accepts.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Export")
	defer span.End()

	raw := r.PathValue("dataset")
	dataset, ok := importing.ParseDataset(raw)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: unknown dataset %q", usecase.ErrInvalidInput, raw))
		return
	}

	body, err := h.exportService.Export(ctx, dataset)
	if err != nil {
		h.logger.ErrorContext(ctx, "export failed", "dataset", dataset, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", string(dataset)+".csv"))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Reset")
	defer span.End()

	summary, err := h.adminService.Reset(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "reset failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resetSummaryDTO{
		Appearances: summary.Appearances,
		Matches:     summary.Matches,
		Tournaments: summary.Tournaments,
		Players:     summary.Players,
	})
}

package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/club-stats/internal/platform/logging"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

const maxJSONBodyBytes = 10 << 20

// Services groups the use cases served over HTTP.
type Services struct {
	Players     *usecase.PlayerService
	Tournaments *usecase.TournamentService
	Matches     *usecase.MatchService
	Rankings    *usecase.RankingService
	Imports     *usecase.ImportService
	Exports     *usecase.ExportService
	Admin       *usecase.AdminService
}

type Handler struct {
	playerService     *usecase.PlayerService
	tournamentService *usecase.TournamentService
	matchService      *usecase.MatchService
	rankingService    *usecase.RankingService
	importService     *usecase.ImportService
	exportService     *usecase.ExportService
	adminService      *usecase.AdminService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:     services.Players,
		tournamentService: services.Tournaments,
		matchService:      services.Matches,
		rankingService:    services.Rankings,
		importService:     services.Imports,
		exportService:     services.Exports,
		adminService:      services.Admin,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSON reads a single JSON document and rejects unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, out any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func parsePathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", usecase.ErrInvalidInput, name, raw)
	}

	return id, nil
}

// parseQueryInt returns 0 when the parameter is absent.
func parseQueryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}

	return value, nil
}

func parseQueryBool(r *http.Request, name string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean, got %q", usecase.ErrInvalidInput, name, raw)
	}

	return value, nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

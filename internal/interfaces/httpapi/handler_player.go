package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/club-stats/internal/domain/importing"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	activeOnly, err := parseQueryBool(r, "active")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.ListPlayers(ctx, activeOnly)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, playerToDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

// GetPlayer returns the player with its aggregated stats and latest appearances.
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := parsePathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.rankingService.PlayerStats(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player stats failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerProfileToDTO(stats))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.CreatePlayerInput{
		FullName: req.FullName,
		Nickname: req.Nickname,
		Dorsal:   req.Dorsal,
		Position: req.Position,
		IsActive: req.IsActive,
		PhotoURL: req.PhotoURL,
	}
	if raw := strings.TrimSpace(req.JoinedAt); raw != "" {
		joinedAt, err := importing.ParseDate(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: joinedAt: %v", usecase.ErrInvalidInput, err))
			return
		}
		input.JoinedAt = &joinedAt
	}

	created, err := h.playerService.CreatePlayer(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "nickname", req.Nickname, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	tournaments, err := h.tournamentService.ListTournaments(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]tournamentDTO, 0, len(tournaments))
	for _, t := range tournaments {
		out = append(out, tournamentToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}


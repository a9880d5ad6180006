package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/club-stats/internal/domain/importing"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

type createMatchResponse struct {
	MatchID int64 `json:"matchId"`
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	limit, err := parseQueryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if limit < 0 {
		writeError(ctx, w, fmt.Errorf("%w: limit must be >= 0", usecase.ErrInvalidInput))
		return
	}
	tournamentID, err := parseQueryInt(r, "tournamentId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := match.ListFilter{Limit: limit}
	if tournamentID > 0 {
		id := int64(tournamentID)
		filter.TournamentID = &id
	}

	matches, err := h.matchService.ListMatches(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		out = append(out, matchToDTO(m))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := parsePathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailToDTO(detail))
}

// CreateMatch records a match with its per-player stats. Player goals must
// add up to ourScore or nothing is stored.
func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, err := importing.ParseDate(req.MatchData.Date)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: matchData.date: %v", usecase.ErrInvalidInput, err))
		return
	}

	input := usecase.CreateMatchInput{
		Date:           date,
		Opponent:       req.MatchData.Opponent,
		OurScore:       req.MatchData.OurScore,
		TheirScore:     req.MatchData.TheirScore,
		TournamentID:   req.MatchData.TournamentID,
		TournamentName: req.MatchData.Tournament,
		Location:       req.MatchData.Location,
		Notes:          req.MatchData.Notes,
		Entries:        make([]usecase.PlayerStatEntry, 0, len(req.PlayerStats)),
	}
	for _, ps := range req.PlayerStats {
		input.Entries = append(input.Entries, usecase.PlayerStatEntry{
			PlayerID:  ps.PlayerID,
			Goals:     ps.Goals,
			Assists:   ps.Assists,
			Yellow:    ps.Yellow,
			Red:       ps.Red,
			MOTM:      ps.MOTM,
			IsStarter: ps.IsStarter,
			Played:    ps.Played,
			Minutes:   ps.Minutes,
		})
	}

	matchID, err := h.matchService.CreateMatch(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "opponent", req.MatchData.Opponent, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, createMatchResponse{MatchID: matchID})
}

package httpapi

import (
	"net/http"
)

func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRankings")
	defer span.End()

	limit, err := parseQueryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	rankingType := r.URL.Query().Get("type")

	entries, err := h.rankingService.Rankings(ctx, rankingType, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "get rankings failed", "type", rankingType, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankingEntriesToDTO(entries))
}

func (h *Handler) GetAllRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAllRankings")
	defer span.End()

	limit, err := parseQueryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	boards, err := h.rankingService.AllRankings(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "get all rankings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make(map[string][]rankingEntryDTO, len(boards))
	for t, entries := range boards {
		out[string(t)] = rankingEntriesToDTO(entries)
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetClubSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClubSummary")
	defer span.End()

	summary, err := h.rankingService.ClubSummary(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get club summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubSummaryToDTO(summary))
}

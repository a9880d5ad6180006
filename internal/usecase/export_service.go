package usecase

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/club-stats/internal/domain/importing"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/tournament"
	"github.com/riskibarqy/club-stats/internal/domain/uow"
)

// ExportService renders stored data in the import CSV schemas, so an export
// can be fed back through ImportService.
type ExportService struct {
	repos uow.Repositories
}

func NewExportService(repos uow.Repositories) *ExportService {
	return &ExportService{repos: repos}
}

func (s *ExportService) Export(ctx context.Context, dataset importing.Dataset) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.Export")
	defer span.End()

	var (
		rows []importing.Row
		err  error
	)
	switch dataset {
	case importing.DatasetPlayers:
		rows, err = s.playerRows(ctx)
	case importing.DatasetMatches:
		rows, err = s.matchRows(ctx)
	case importing.DatasetAppearances:
		rows, err = s.appearanceRows(ctx)
	default:
		return nil, fmt.Errorf("%w: unknown dataset %q", ErrInvalidInput, dataset)
	}
	if err != nil {
		return nil, err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := importing.WriteCSV(buf, dataset.Columns(), rows); err != nil {
		return nil, fmt.Errorf("write %s csv: %w", dataset, err)
	}
	return append([]byte(nil), buf.B...), nil
}

func (s *ExportService) playerRows(ctx context.Context) ([]importing.Row, error) {
	players, err := s.repos.Players.List(ctx, player.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	rows := make([]importing.Row, 0, len(players))
	for _, p := range players {
		row := importing.Row{
			importing.ColFullName: p.FullName,
			importing.ColNickname: p.Nickname,
			importing.ColPosition: string(p.Position),
			importing.ColIsActive: strconv.FormatBool(p.IsActive),
			importing.ColPhotoURL: p.PhotoURL,
		}
		if p.Dorsal != nil {
			row[importing.ColDorsal] = strconv.Itoa(*p.Dorsal)
		}
		if !p.JoinedAt.IsZero() {
			row[importing.ColJoinedAt] = p.JoinedAt.UTC().Format(time.DateOnly)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *ExportService) matchRows(ctx context.Context) ([]importing.Row, error) {
	matches, err := s.repos.Matches.List(ctx, match.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	tournaments, err := s.repos.Tournaments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	byID := make(map[int64]tournament.Tournament, len(tournaments))
	for _, t := range tournaments {
		byID[t.ID] = t
	}

	slices.Reverse(matches)
	rows := make([]importing.Row, 0, len(matches))
	for _, m := range matches {
		row := importing.Row{
			importing.ColDate:       m.Date.UTC().Format(time.DateOnly),
			importing.ColOpponent:   m.Opponent,
			importing.ColOurScore:   strconv.Itoa(m.OurScore),
			importing.ColTheirScore: strconv.Itoa(m.TheirScore),
			importing.ColResult:     string(m.Result),
			importing.ColLocation:   m.Location,
			importing.ColNotes:      m.Notes,
		}
		if m.TournamentID != nil {
			if t, ok := byID[*m.TournamentID]; ok {
				row[importing.ColTournament] = t.Name
				row[importing.ColSeason] = t.Season
				row[importing.ColOrganizer] = t.Organizer
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *ExportService) appearanceRows(ctx context.Context) ([]importing.Row, error) {
	detailed, err := s.repos.Appearances.ListDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appearances: %w", err)
	}
	players, err := s.repos.Players.List(ctx, player.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	nicknames := make(map[int64]string, len(players))
	for _, p := range players {
		nicknames[p.ID] = p.Nickname
	}

	slices.Reverse(detailed)
	rows := make([]importing.Row, 0, len(detailed))
	for _, d := range detailed {
		// Import resolves appearance players by nickname only.
		nickname := nicknames[d.PlayerID]
		if nickname == "" {
			return nil, fmt.Errorf("%w: player %d has appearances but no nickname; set one before exporting appearances", ErrInconsistent, d.PlayerID)
		}
		row := importing.Row{
			importing.ColMatchDate:      d.MatchDate.UTC().Format(time.DateOnly),
			importing.ColOpponent:       d.Opponent,
			importing.ColPlayerNickname: nickname,
			importing.ColIsStarter:      strconv.FormatBool(d.IsStarter),
			importing.ColGoals:          strconv.Itoa(d.Goals),
			importing.ColAssists:        strconv.Itoa(d.Assists),
			importing.ColYellow:         strconv.FormatBool(d.Yellow),
			importing.ColRed:            strconv.FormatBool(d.Red),
			importing.ColMOTM:           strconv.FormatBool(d.MOTM),
		}
		if d.Minutes != nil {
			row[importing.ColMinutes] = strconv.Itoa(*d.Minutes)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

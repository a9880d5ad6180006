package httpapi

import (
	"strconv"
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/appearance"
	"github.com/riskibarqy/club-stats/internal/domain/importing"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/ranking"
	"github.com/riskibarqy/club-stats/internal/domain/tournament"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

const dateLayout = "2006-01-02"

type createPlayerRequest struct {
	FullName string `json:"fullName" validate:"required,max=120"`
	Nickname string `json:"nickname" validate:"omitempty,max=60"`
	Dorsal   *int   `json:"dorsal" validate:"omitempty,min=0,max=99"`
	Position string `json:"position" validate:"omitempty,max=20"`
	JoinedAt string `json:"joinedAt" validate:"omitempty"`
	IsActive *bool  `json:"isActive"`
	PhotoURL string `json:"photoUrl" validate:"omitempty,url"`
}

type createMatchRequest struct {
	MatchData   matchDataRequest     `json:"matchData" validate:"required"`
	PlayerStats []playerStatsRequest `json:"playerStats" validate:"dive"`
}

type matchDataRequest struct {
	Date         string `json:"date" validate:"required"`
	Opponent     string `json:"opponent" validate:"required,max=120"`
	OurScore     *int   `json:"ourScore" validate:"required,min=0"`
	TheirScore   *int   `json:"theirScore" validate:"required,min=0"`
	TournamentID *int64 `json:"tournamentId" validate:"omitempty,gt=0"`
	Tournament   string `json:"tournament" validate:"omitempty,max=120"`
	Location     string `json:"location" validate:"omitempty,max=200"`
	Notes        string `json:"notes" validate:"omitempty,max=2000"`
}

type playerStatsRequest struct {
	PlayerID  int64 `json:"playerId" validate:"required,gt=0"`
	Goals     int   `json:"goals" validate:"min=0"`
	Assists   int   `json:"assists" validate:"min=0"`
	Yellow    bool  `json:"yellow"`
	Red       bool  `json:"red"`
	MOTM      bool  `json:"motm"`
	IsStarter *bool `json:"isStarter"`
	Played    bool  `json:"played"`
	Minutes   *int  `json:"minutes" validate:"omitempty,min=0,max=120"`
}

// importRequest accepts rows whose cells may be JSON strings, numbers or booleans.
type importRequest struct {
	Players     []map[string]any `json:"players"`
	Matches     []map[string]any `json:"matches"`
	Appearances []map[string]any `json:"appearances"`
}

type playerDTO struct {
	ID        int64  `json:"id"`
	FullName  string `json:"fullName"`
	Nickname  string `json:"nickname,omitempty"`
	Name      string `json:"name"`
	Dorsal    *int   `json:"dorsal,omitempty"`
	Position  string `json:"position"`
	JoinedAt  string `json:"joinedAt"`
	IsActive  bool   `json:"isActive"`
	PhotoURL  string `json:"photoUrl,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type tournamentDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Season    string `json:"season,omitempty"`
	Organizer string `json:"organizer,omitempty"`
}

type matchDTO struct {
	ID           int64  `json:"id"`
	Date         string `json:"date"`
	Opponent     string `json:"opponent"`
	OurScore     int    `json:"ourScore"`
	TheirScore   int    `json:"theirScore"`
	Result       string `json:"result"`
	Location     string `json:"location,omitempty"`
	Notes        string `json:"notes,omitempty"`
	TournamentID *int64 `json:"tournamentId,omitempty"`
}

type appearanceDTO struct {
	ID        int64 `json:"id"`
	MatchID   int64 `json:"matchId"`
	PlayerID  int64 `json:"playerId"`
	IsStarter bool  `json:"isStarter"`
	Minutes   *int  `json:"minutes,omitempty"`
	Goals     int   `json:"goals"`
	Assists   int   `json:"assists"`
	Yellow    bool  `json:"yellow"`
	Red       bool  `json:"red"`
	MOTM      bool  `json:"motm"`
}

type scorerDTO struct {
	PlayerID int64 `json:"playerId"`
	Goals    int   `json:"goals"`
}

type matchSummaryDTO struct {
	TotalGoals      int         `json:"totalGoals"`
	TotalAssists    int         `json:"totalAssists"`
	YellowCards     int         `json:"yellowCards"`
	RedCards        int         `json:"redCards"`
	Starters        int         `json:"starters"`
	Substitutes     int         `json:"substitutes"`
	Scorers         []scorerDTO `json:"scorers"`
	MOTMPlayerID    *int64      `json:"motmPlayerId,omitempty"`
	GoalsReconciled bool        `json:"goalsReconciled"`
}

type matchDetailDTO struct {
	Match       matchDTO        `json:"match"`
	Tournament  *tournamentDTO  `json:"tournament,omitempty"`
	Appearances []appearanceDTO `json:"appearances"`
	Summary     matchSummaryDTO `json:"summary"`
}

type rankingEntryDTO struct {
	Rank        int       `json:"rank"`
	Player      playerDTO `json:"player"`
	Value       float64   `json:"value"`
	Appearances int       `json:"appearances"`
	Trend       string    `json:"trend"`
}

type playerSummaryDTO struct {
	Appearances     int     `json:"appearances"`
	Goals           int     `json:"goals"`
	Assists         int     `json:"assists"`
	YellowCards     int     `json:"yellowCards"`
	RedCards        int     `json:"redCards"`
	Starts          int     `json:"starts"`
	Substitutes     int     `json:"substitutes"`
	MOTM            int     `json:"motm"`
	Minutes         int     `json:"minutes"`
	GoalsPerMatch   float64 `json:"goalsPerMatch"`
	AssistsPerMatch float64 `json:"assistsPerMatch"`
}

type recentAppearanceDTO struct {
	MatchID    int64  `json:"matchId"`
	Date       string `json:"date"`
	Opponent   string `json:"opponent"`
	OurScore   int    `json:"ourScore"`
	TheirScore int    `json:"theirScore"`
	Goals      int    `json:"goals"`
	Assists    int    `json:"assists"`
	IsStarter  bool   `json:"isStarter"`
	MOTM       bool   `json:"motm"`
}

type playerProfileDTO struct {
	Player  playerDTO             `json:"player"`
	Summary playerSummaryDTO      `json:"summary"`
	Recent  []recentAppearanceDTO `json:"recent"`
}

type clubSummaryDTO struct {
	Played         int     `json:"played"`
	Wins           int     `json:"wins"`
	Draws          int     `json:"draws"`
	Losses         int     `json:"losses"`
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
	WinRate        float64 `json:"winRate"`
}

type importSummaryDTO struct {
	RunID              string `json:"runId"`
	Summary            string `json:"summary"`
	PlayersCreated     int    `json:"playersCreated"`
	PlayersUpdated     int    `json:"playersUpdated"`
	TournamentsCreated int    `json:"tournamentsCreated"`
	MatchesCreated     int    `json:"matchesCreated"`
	MatchesSkipped     int    `json:"matchesSkipped"`
	AppearancesCreated int    `json:"appearancesCreated"`
}

type resetSummaryDTO struct {
	Appearances int64 `json:"appearances"`
	Matches     int64 `json:"matches"`
	Tournaments int64 `json:"tournaments"`
	Players     int64 `json:"players"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

func playerToDTO(p player.Player) playerDTO {
	dto := playerDTO{
		ID:       p.ID,
		FullName: p.FullName,
		Nickname: p.Nickname,
		Name:     p.DisplayName(),
		Dorsal:   p.Dorsal,
		Position: string(p.Position),
		JoinedAt: formatDate(p.JoinedAt),
		IsActive: p.IsActive,
		PhotoURL: p.PhotoURL,
	}
	if !p.CreatedAt.IsZero() {
		dto.CreatedAt = p.CreatedAt.UTC().Format(time.RFC3339)
	}
	return dto
}

func tournamentToDTO(t tournament.Tournament) tournamentDTO {
	return tournamentDTO{
		ID:        t.ID,
		Name:      t.Name,
		Season:    t.Season,
		Organizer: t.Organizer,
	}
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:           m.ID,
		Date:         formatDate(m.Date),
		Opponent:     m.Opponent,
		OurScore:     m.OurScore,
		TheirScore:   m.TheirScore,
		Result:       string(m.Result),
		Location:     m.Location,
		Notes:        m.Notes,
		TournamentID: m.TournamentID,
	}
}

func appearanceToDTO(a appearance.Appearance) appearanceDTO {
	return appearanceDTO{
		ID:        a.ID,
		MatchID:   a.MatchID,
		PlayerID:  a.PlayerID,
		IsStarter: a.IsStarter,
		Minutes:   a.Minutes,
		Goals:     a.Goals,
		Assists:   a.Assists,
		Yellow:    a.Yellow,
		Red:       a.Red,
		MOTM:      a.MOTM,
	}
}

func matchDetailToDTO(d usecase.MatchDetail) matchDetailDTO {
	out := matchDetailDTO{
		Match:       matchToDTO(d.Match),
		Appearances: make([]appearanceDTO, 0, len(d.Appearances)),
		Summary: matchSummaryDTO{
			TotalGoals:      d.Summary.TotalGoals,
			TotalAssists:    d.Summary.TotalAssists,
			YellowCards:     d.Summary.YellowCards,
			RedCards:        d.Summary.RedCards,
			Starters:        d.Summary.Starters,
			Substitutes:     d.Summary.Substitutes,
			Scorers:         make([]scorerDTO, 0, len(d.Summary.Scorers)),
			MOTMPlayerID:    d.Summary.MOTMPlayerID,
			GoalsReconciled: d.Summary.GoalsReconciled,
		},
	}
	if d.Tournament != nil {
		t := tournamentToDTO(*d.Tournament)
		out.Tournament = &t
	}
	for _, a := range d.Appearances {
		out.Appearances = append(out.Appearances, appearanceToDTO(a))
	}
	for _, s := range d.Summary.Scorers {
		out.Summary.Scorers = append(out.Summary.Scorers, scorerDTO{PlayerID: s.PlayerID, Goals: s.Goals})
	}
	return out
}

func rankingEntriesToDTO(entries []ranking.Entry) []rankingEntryDTO {
	out := make([]rankingEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, rankingEntryDTO{
			Rank:        e.Rank,
			Player:      playerToDTO(e.Player),
			Value:       e.Value,
			Appearances: e.Appearances,
			Trend:       string(e.Trend),
		})
	}
	return out
}

func playerProfileToDTO(stats usecase.PlayerStats) playerProfileDTO {
	s := stats.Summary
	out := playerProfileDTO{
		Player: playerToDTO(stats.Player),
		Summary: playerSummaryDTO{
			Appearances:     s.Appearances,
			Goals:           s.Goals,
			Assists:         s.Assists,
			YellowCards:     s.YellowCards,
			RedCards:        s.RedCards,
			Starts:          s.Starts,
			Substitutes:     s.Substitutes,
			MOTM:            s.MOTM,
			Minutes:         s.Minutes,
			GoalsPerMatch:   s.GoalsPerMatch,
			AssistsPerMatch: s.AssistsPerMatch,
		},
		Recent: make([]recentAppearanceDTO, 0, len(stats.Recent)),
	}
	for _, d := range stats.Recent {
		out.Recent = append(out.Recent, recentAppearanceDTO{
			MatchID:    d.MatchID,
			Date:       formatDate(d.MatchDate),
			Opponent:   d.Opponent,
			OurScore:   d.OurScore,
			TheirScore: d.TheirScore,
			Goals:      d.Goals,
			Assists:    d.Assists,
			IsStarter:  d.IsStarter,
			MOTM:       d.MOTM,
		})
	}
	return out
}

func clubSummaryToDTO(s ranking.ClubSummary) clubSummaryDTO {
	return clubSummaryDTO{
		Played:         s.Played,
		Wins:           s.Wins,
		Draws:          s.Draws,
		Losses:         s.Losses,
		GoalsFor:       s.GoalsFor,
		GoalsAgainst:   s.GoalsAgainst,
		GoalDifference: s.GoalDifference,
		WinRate:        s.WinRate,
	}
}

func importSummaryToDTO(s importing.Summary) importSummaryDTO {
	return importSummaryDTO{
		RunID:              s.RunID,
		Summary:            s.String(),
		PlayersCreated:     s.PlayersCreated,
		PlayersUpdated:     s.PlayersUpdated,
		TournamentsCreated: s.TournamentsCreated,
		MatchesCreated:     s.MatchesCreated,
		MatchesSkipped:     s.MatchesSkipped,
		AppearancesCreated: s.AppearancesCreated,
	}
}

// rowsFromJSON renders decoded JSON cells the way a CSV reader would see them.
func rowsFromJSON(items []map[string]any) []importing.Row {
	rows := make([]importing.Row, 0, len(items))
	for _, item := range items {
		row := make(importing.Row, len(item))
		for key, value := range item {
			row[key] = cellString(value)
		}
		rows = append(rows, row)
	}
	return rows
}

func cellString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

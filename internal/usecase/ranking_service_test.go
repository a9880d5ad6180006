package usecase

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/riskibarqy/club-stats/internal/domain/appearance"
	"github.com/riskibarqy/club-stats/internal/domain/importing"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-stats/internal/infrastructure/repository/seed"
	idgen "github.com/riskibarqy/club-stats/internal/platform/id"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

func seededStore(t *testing.T) *memory.Store {
	t.Helper()

	store := memory.NewStore()
	if err := seed.Demo(t.Context(), store); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return store
}

func TestRankingService_PlayerStatsAndClubSummary(t *testing.T) {
	store := seededStore(t)
	repos := store.Repositories()
	service := NewRankingService(repos, 10, logging.NewNop())

	juan, ok, err := repos.Players.GetByNickname(t.Context(), "JuanP")
	if err != nil || !ok {
		t.Fatalf("get seeded player: ok=%v err=%v", ok, err)
	}

	stats, err := service.PlayerStats(t.Context(), juan.ID)
	if err != nil {
		t.Fatalf("player stats: %v", err)
	}
	if stats.Summary.Appearances != 3 || stats.Summary.Goals != 2 || stats.Summary.GoalsPerMatch != 0.67 {
		t.Fatalf("unexpected summary: %+v", stats.Summary)
	}
	if len(stats.Recent) != 3 || stats.Recent[0].Opponent != "Atletico Norte" {
		t.Fatalf("unexpected recent appearances: %+v", stats.Recent)
	}

	club, err := service.ClubSummary(t.Context())
	if err != nil {
		t.Fatalf("club summary: %v", err)
	}
	if club.Played != 3 || club.Wins != 1 || club.Draws != 1 || club.Losses != 1 {
		t.Fatalf("unexpected club summary: %+v", club)
	}
	if club.GoalsFor != 3 || club.GoalsAgainst != 4 {
		t.Fatalf("unexpected goals: %+v", club)
	}
}

func TestRankingService_ConcurrentReadsShareSnapshot(t *testing.T) {
	store := seededStore(t)
	service := NewRankingService(store.Repositories(), 3, logging.NewNop())

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entries, err := service.Rankings(t.Context(), "appearances", 0)
			if err == nil && len(entries) != 3 {
				err = errors.New("default limit not applied")
			}
			errs[i] = err
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			t.Fatalf("concurrent ranking read: %v", err)
		}
	}
}

func TestExportService_RoundTripsThroughImport(t *testing.T) {
	source := seededStore(t)
	exporter := NewExportService(source.Repositories())

	inputs := map[importing.Dataset][]importing.Row{}
	for _, dataset := range []importing.Dataset{importing.DatasetPlayers, importing.DatasetMatches, importing.DatasetAppearances} {
		raw, err := exporter.Export(t.Context(), dataset)
		if err != nil {
			t.Fatalf("export %s: %v", dataset, err)
		}
		if !strings.HasPrefix(string(raw), strings.Join(dataset.Columns(), ",")+"\n") {
			t.Fatalf("unexpected %s header: %q", dataset, strings.SplitN(string(raw), "\n", 2)[0])
		}
		rows, err := importing.ReadCSV(strings.NewReader(string(raw)))
		if err != nil {
			t.Fatalf("read exported %s: %v", dataset, err)
		}
		inputs[dataset] = rows
	}

	target := memory.NewStore()
	importer := NewImportService(target, idgen.Static("run-export"), 2, logging.NewNop())
	summary, err := importer.Import(t.Context(), ImportInput{
		Players:     inputs[importing.DatasetPlayers],
		Matches:     inputs[importing.DatasetMatches],
		Appearances: inputs[importing.DatasetAppearances],
	})
	if err != nil {
		t.Fatalf("import exported data: %v", err)
	}
	if summary.PlayersCreated != 5 || summary.MatchesCreated != 3 || summary.AppearancesCreated != 12 || summary.TournamentsCreated != 1 {
		t.Fatalf("unexpected summary: %s", summary)
	}

	inactive, ok, err := target.Repositories().Players.GetByNickname(t.Context(), "Andy")
	if err != nil || !ok {
		t.Fatalf("get imported player: ok=%v err=%v", ok, err)
	}
	if inactive.IsActive || inactive.Position != player.PositionForward {
		t.Fatalf("player attributes lost in round trip: %+v", inactive)
	}

	if _, err := exporter.Export(t.Context(), importing.Dataset("users")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown dataset, got %v", err)
	}
}

func TestExportService_AppearancesRequirePlayerNickname(t *testing.T) {
	store := seededStore(t)
	repos := store.Repositories()

	unnamed, err := repos.Players.Create(t.Context(), player.Player{FullName: "Pedro Salas", IsActive: true})
	if err != nil {
		t.Fatalf("create player without nickname: %v", err)
	}
	matches, err := repos.Matches.List(t.Context(), match.ListFilter{})
	if err != nil || len(matches) == 0 {
		t.Fatalf("list matches: n=%d err=%v", len(matches), err)
	}
	if _, err := repos.Appearances.Create(t.Context(), appearance.Appearance{MatchID: matches[0].ID, PlayerID: unnamed.ID}); err != nil {
		t.Fatalf("create appearance: %v", err)
	}

	exporter := NewExportService(repos)
	_, err = exporter.Export(t.Context(), importing.DatasetAppearances)
	if !errors.Is(err, ErrInconsistent) {
		t.Fatalf("expected ErrInconsistent for nickname-less appearance, got %v", err)
	}
	if !strings.Contains(err.Error(), strconv.FormatInt(unnamed.ID, 10)) {
		t.Fatalf("expected error to name player %d, got %v", unnamed.ID, err)
	}

	if _, err := exporter.Export(t.Context(), importing.DatasetPlayers); err != nil {
		t.Fatalf("players export should still succeed: %v", err)
	}
}

func TestAdminService_Reset(t *testing.T) {
	store := seededStore(t)
	service := NewAdminService(store, logging.NewNop())

	summary, err := service.Reset(t.Context())
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if summary.Players != 5 || summary.Matches != 3 || summary.Appearances != 12 || summary.Tournaments != 1 {
		t.Fatalf("unexpected reset summary: %+v", summary)
	}

	players, err := store.Repositories().Players.List(t.Context(), player.ListFilter{})
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 0 {
		t.Fatalf("expected empty roster, got %d", len(players))
	}
}

func TestPlayerService_CreatePlayer(t *testing.T) {
	store := memory.NewStore()
	service := NewPlayerService(store.Repositories().Players, logging.NewNop())

	created, err := service.CreatePlayer(t.Context(), CreatePlayerInput{FullName: " Juan Perez ", Nickname: "JuanP", Position: "delantero", Dorsal: intPtr(9)})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if created.ID == 0 || created.FullName != "Juan Perez" || created.Position != player.PositionForward || !created.IsActive {
		t.Fatalf("unexpected player: %+v", created)
	}

	if _, err := service.CreatePlayer(t.Context(), CreatePlayerInput{FullName: "Other", Nickname: "JuanP"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected duplicate nickname rejection, got %v", err)
	}
	if _, err := service.CreatePlayer(t.Context(), CreatePlayerInput{FullName: "X", Position: "libero"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected unknown position rejection, got %v", err)
	}
	if _, err := service.CreatePlayer(t.Context(), CreatePlayerInput{Nickname: "NoName"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected missing full name rejection, got %v", err)
	}

	got, err := service.GetPlayer(t.Context(), created.ID)
	if err != nil || got.Nickname != "JuanP" {
		t.Fatalf("get player: %+v %v", got, err)
	}
	if _, err := service.GetPlayer(t.Context(), created.ID+1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

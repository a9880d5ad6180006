package querybuilder

import (
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "nickname").
		From("players").
		Where(Eq("nickname", "JuanP"), IsNull("photo_url")).
		OrderBy("id").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, nickname FROM players WHERE nickname = $1 AND photo_url IS NULL ORDER BY id LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "JuanP" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_InAndExpr(t *testing.T) {
	query, args, err := Select("id").
		From("matches").
		Where(In("id", []any{int64(1), int64(2)}), Expr("COALESCE(season, '') = ?", "2024")).
		ForUpdate().
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM matches WHERE id IN ($1, $2) AND COALESCE(season, '') = $3 FOR UPDATE"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != "2024" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyIn(t *testing.T) {
	query, args, err := Select("id").From("players").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM players WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected query %q args %+v", query, args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("tournaments").
		Columns("name", "season").
		Values("Liga", "2024").
		Suffix("ON CONFLICT DO NOTHING").
		Returning("id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO tournaments (name, season) VALUES ($1, $2) ON CONFLICT DO NOTHING RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Liga" || args[1] != "2024" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_ValueCountMismatch(t *testing.T) {
	if _, _, err := InsertInto("players").Columns("a", "b").Values(1).ToSQL(); err == nil {
		t.Fatalf("expected error for mismatched values")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("players").
		Set("dorsal", 10).
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE players SET dorsal = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != 10 || args[1] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_Returning(t *testing.T) {
	query, _, err := Update("players").
		Set("nickname", "JuanP").
		Where(Eq("id", int64(7))).
		Returning("id", "updated_at").
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE players SET nickname = $1 WHERE id = $2 RETURNING id, updated_at"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
}

func TestUpdateBuilder_RequiresWhere(t *testing.T) {
	if _, _, err := Update("players").Set("dorsal", 1).ToSQL(); err == nil {
		t.Fatalf("expected error for update without where")
	}
}

func TestDeleteBuilder(t *testing.T) {
	if _, _, err := DeleteFrom("matches").ToSQL(); err == nil {
		t.Fatalf("expected error for unguarded delete")
	}

	query, args, err := DeleteFrom("matches").All().ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM matches" || len(args) != 0 {
		t.Fatalf("unexpected query %q args %+v", query, args)
	}

	query, args, err = DeleteFrom("appearances").Where(Eq("match_id", int64(3))).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM appearances WHERE match_id = $1" || len(args) != 1 {
		t.Fatalf("unexpected query %q args %+v", query, args)
	}
}

type sampleRow struct {
	ID        int64     `db:"id,readonly"`
	Name      string    `db:"name"`
	Season    *string   `db:"season"`
	CreatedAt time.Time `db:"created_at,readonly"`
	ignored   string
	Skip      string `db:"-"`
}

func TestInsertModel_SkipsReadonlyColumns(t *testing.T) {
	season := "2024"
	query, args, err := InsertModel("tournaments", sampleRow{ID: 9, Name: "Copa", Season: &season}, "id", "created_at")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO tournaments (name, season) VALUES ($1, $2) RETURNING id, created_at"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Copa" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestColumns(t *testing.T) {
	cols := Columns(&sampleRow{})
	want := []string{"id", "name", "season", "created_at"}
	if len(cols) != len(want) {
		t.Fatalf("unexpected columns: %+v", cols)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Fatalf("unexpected column %d: %s", i, cols[i])
		}
	}
}

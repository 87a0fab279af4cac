package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("player_id", "gameweek").
		From("player_gameweeks").
		Where(Eq("season", "2025-26"), Eq("gameweek", 7)).
		OrderBy("gameweek").
		Limit(5).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT player_id, gameweek FROM player_gameweeks WHERE season = $1 AND gameweek = $2 ORDER BY gameweek LIMIT 5"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "2025-26" || args[1] != 7 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderIn(t *testing.T) {
	query, args, err := Select("abbrev").
		From("teams").
		Where(In("abbrev", []any{"ARS", "CHE"})).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT abbrev FROM teams WHERE abbrev IN ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}

	query, _, err = Select("abbrev").From("teams").Where(In("abbrev", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT abbrev FROM teams WHERE 1=0" {
		t.Fatalf("empty IN should short-circuit, got: %s", query)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("players").
		Columns("fantrax_id", "name").
		Values("abc123", "Saka").
		Suffix("ON CONFLICT (fantrax_id) DO UPDATE SET name = EXCLUDED.name RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO players (fantrax_id, name) VALUES ($1, $2) ON CONFLICT (fantrax_id) DO UPDATE SET name = EXCLUDED.name RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "abc123" || args[1] != "Saka" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderRowMismatch(t *testing.T) {
	_, _, err := InsertInto("players").
		Columns("fantrax_id", "name").
		Values("abc123").
		ToSQL()
	if err == nil {
		t.Fatal("expected error for row/column mismatch")
	}
}

func TestInsertModelFlattensEmbedded(t *testing.T) {
	type inner struct {
		Goals   float64 `db:"goals"`
		Assists float64 `db:"assists"`
	}
	type row struct {
		PlayerID string `db:"player_id"`
		inner
		Season string `db:"season"`
	}

	query, args, err := InsertModel("player_gameweeks", row{
		PlayerID: "p1",
		inner:    inner{Goals: 2, Assists: 1},
		Season:   "2025-26",
	}, "")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO player_gameweeks (player_id, goals, assists, season) VALUES ($1, $2, $3, $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[1] != 2.0 || args[3] != "2025-26" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModelRejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("players", 42, ""); err == nil {
		t.Fatal("expected error for non-struct model")
	}
	var nilRow *struct {
		ID string `db:"id"`
	}
	if _, _, err := InsertModel("players", nilRow, ""); err == nil {
		t.Fatal("expected error for nil model")
	}
}

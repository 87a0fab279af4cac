package postgres

import (
	"database/sql"
	"fmt"
	"reflect"
	"testing"

	qb "github.com/draftghost/statsportal/internal/platform/querybuilder"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected true for sql.ErrNoRows")
	}
	if isNotFound(fmt.Errorf("pq: relation players does not exist")) {
		t.Fatalf("expected false for unrelated error")
	}
}

// The select column list is maintained by hand; it must stay aligned with the
// table model's db tags or sqlx scanning breaks.
func TestPlayerGameweekColumnsMatchModel(t *testing.T) {
	modelColumns, err := qb.ModelColumns(playerGameweekTableModel{})
	if err != nil {
		t.Fatalf("model columns: %v", err)
	}

	if !reflect.DeepEqual(playerGameweekColumns, modelColumns) {
		t.Fatalf("column list out of sync with model:\nlist:  %v\nmodel: %v", playerGameweekColumns, modelColumns)
	}
}

package postgres

import "github.com/draftghost/statsportal/internal/domain/player"

type playerTableModel struct {
	ID              string `db:"id"`
	FantraxID       string `db:"fantrax_id"`
	Name            string `db:"name"`
	Team            string `db:"team"`
	Position        string `db:"position"`
	OwnershipPct    string `db:"ownership_pct"`
	OwnershipChange string `db:"ownership_change"`
	IsKeeper        bool   `db:"is_keeper"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:              m.ID,
		FantraxID:       m.FantraxID,
		Name:            m.Name,
		Team:            m.Team,
		Position:        player.Position(m.Position),
		OwnershipPct:    m.OwnershipPct,
		OwnershipChange: m.OwnershipChange,
		IsKeeper:        m.IsKeeper,
	}
}

func playerToModel(p player.Player) playerTableModel {
	return playerTableModel{
		ID:              p.ID,
		FantraxID:       p.FantraxID,
		Name:            p.Name,
		Team:            p.Team,
		Position:        string(p.Position),
		OwnershipPct:    p.OwnershipPct,
		OwnershipChange: p.OwnershipChange,
		IsKeeper:        p.IsKeeper,
	}
}

package postgres

import "github.com/draftghost/statsportal/internal/domain/team"

type teamTableModel struct {
	Abbrev    string `db:"abbrev"`
	ShortName string `db:"short_name"`
	FullName  string `db:"full_name"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		Abbrev:    m.Abbrev,
		ShortName: m.ShortName,
		FullName:  m.FullName,
	}
}

func teamToModel(t team.Team) teamTableModel {
	return teamTableModel{
		Abbrev:    t.Abbrev,
		ShortName: t.ShortName,
		FullName:  t.FullName,
	}
}

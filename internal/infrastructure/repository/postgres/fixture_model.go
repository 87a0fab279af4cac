package postgres

import "github.com/draftghost/statsportal/internal/domain/fixture"

type fixtureTableModel struct {
	Season   string `db:"season"`
	Gameweek int    `db:"gameweek"`
	HomeTeam string `db:"home_team"`
	AwayTeam string `db:"away_team"`
}

func (m fixtureTableModel) toDomain() fixture.Fixture {
	return fixture.Fixture{
		Season:   m.Season,
		Gameweek: m.Gameweek,
		HomeTeam: m.HomeTeam,
		AwayTeam: m.AwayTeam,
	}
}

func fixtureToModel(f fixture.Fixture) fixtureTableModel {
	return fixtureTableModel{
		Season:   f.Season,
		Gameweek: f.Gameweek,
		HomeTeam: f.HomeTeam,
		AwayTeam: f.AwayTeam,
	}
}

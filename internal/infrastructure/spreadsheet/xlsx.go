package spreadsheet

import (
	"io"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"

	"github.com/draftghost/statsportal/internal/domain/fixture"
	"github.com/draftghost/statsportal/internal/domain/team"
)

const (
	fixtureSheetName = "FixtureKey"
	teamSheetName    = "TeamMap"
)

// ParseFixtureWorkbook reads the season schedule from the "FixtureKey" sheet
// (or the first sheet when it is absent). Rows outside gameweeks 1..38 or
// missing either team code are dropped; an upload with no surviving rows is an
// error so a wrong workbook cannot silently succeed.
func ParseFixtureWorkbook(r io.Reader, season string) ([]fixture.Fixture, error) {
	rows, err := sheetRecords(r, fixtureSheetName)
	if err != nil {
		return nil, err
	}

	fixtures := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		gw, err := strconv.Atoi(cellValue(row, "Gameweek", "gameweek"))
		if err != nil || gw < fixture.MinGameweek || gw > fixture.MaxGameweek {
			continue
		}

		home := strings.ToUpper(cellValue(row, "HomeAbbrev", "homeabbrev"))
		away := strings.ToUpper(cellValue(row, "AwayAbbrev", "awayabbrev"))
		if home == "" || away == "" {
			continue
		}

		fixtures = append(fixtures, fixture.Fixture{
			Season:   season,
			Gameweek: gw,
			HomeTeam: home,
			AwayTeam: away,
		})
	}

	if len(fixtures) == 0 {
		return nil, crerr.New("no valid fixture rows")
	}

	return fixtures, nil
}

// ParseTeamWorkbook reads the club list from the "TeamMap" sheet (or the first
// sheet when it is absent). Rows missing any of abbrev, short name or full
// name are dropped.
func ParseTeamWorkbook(r io.Reader) ([]team.Team, error) {
	rows, err := sheetRecords(r, teamSheetName)
	if err != nil {
		return nil, err
	}

	teams := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		t := team.Team{
			Abbrev:    strings.ToUpper(cellValue(row, "TeamAbbrev", "teamabbrev", "abbrev", "Abbrev")),
			ShortName: cellValue(row, "TeamName", "teamname", "name", "Name"),
			FullName:  cellValue(row, "TeamFullName", "teamfullname", "full_name", "Full Name", "FullName"),
		}
		if t.Abbrev == "" || t.ShortName == "" || t.FullName == "" {
			continue
		}
		teams = append(teams, t)
	}

	if len(teams) == 0 {
		return nil, crerr.New("no valid team rows")
	}

	return teams, nil
}

// sheetRecords opens the workbook and converts the preferred sheet into
// header-keyed rows. Sheet name matching is case-insensitive.
func sheetRecords(r io.Reader, preferred string) ([]map[string]string, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, crerr.Wrap(err, "open workbook")
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, crerr.New("no sheets found in workbook")
	}

	sheet := sheets[0]
	for _, name := range sheets {
		if strings.EqualFold(strings.TrimSpace(name), preferred) {
			sheet = name
			break
		}
	}

	raw, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, crerr.Wrapf(err, "read sheet %s", sheet)
	}
	if len(raw) < 2 {
		return nil, crerr.Newf("no rows found in sheet %s", sheet)
	}

	headers := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		headers[i] = strings.TrimSpace(h)
	}

	records := make([]map[string]string, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		record := make(map[string]string, len(headers))
		for i, cell := range cells {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			record[headers[i]] = strings.TrimSpace(cell)
		}
		if len(record) > 0 {
			records = append(records, record)
		}
	}

	return records, nil
}

func cellValue(record map[string]string, keys ...string) string {
	for _, key := range keys {
		if v, ok := record[key]; ok && v != "" {
			return v
		}
	}
	return ""
}

package team

import "fmt"

// Team is one club, keyed by its 3-4 letter abbreviation.
type Team struct {
	Abbrev    string
	ShortName string
	FullName  string
}

func (t Team) Validate() error {
	if t.Abbrev == "" {
		return fmt.Errorf("team abbrev is required")
	}
	if t.ShortName == "" {
		return fmt.Errorf("team short name is required")
	}
	if t.FullName == "" {
		return fmt.Errorf("team full name is required")
	}

	return nil
}

// NameMap resolves abbrevs to display names, preferring the full name.
func NameMap(teams []Team) map[string]string {
	out := make(map[string]string, len(teams))
	for _, t := range teams {
		name := t.FullName
		if name == "" {
			name = t.ShortName
		}
		if name == "" {
			name = t.Abbrev
		}
		out[t.Abbrev] = name
	}
	return out
}

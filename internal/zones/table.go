package zones

import (
	"strings"
)

// Zone is one row of the delivery table. An empty Locality means the whole
// local government area is served.
type Zone struct {
	State           string `json:"state"`
	LocalGovernment string `json:"localGovernment"`
	Locality        string `json:"locality,omitempty"`
}

type area struct {
	name       string
	localities map[string]string
	wholeArea  bool
}

type state struct {
	name  string
	areas map[string]*area
}

// Table is the nested state -> local government -> locality lookup. Keys are
// normalised so every level matches case-insensitively.
type Table struct {
	states map[string]*state
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func NewTable(zones []Zone) *Table {
	t := &Table{states: make(map[string]*state)}

	for _, z := range zones {
		stateKey := normalize(z.State)
		areaKey := normalize(z.LocalGovernment)
		if stateKey == "" || areaKey == "" {
			continue
		}

		st, ok := t.states[stateKey]
		if !ok {
			st = &state{name: strings.TrimSpace(z.State), areas: make(map[string]*area)}
			t.states[stateKey] = st
		}

		ar, ok := st.areas[areaKey]
		if !ok {
			ar = &area{name: strings.TrimSpace(z.LocalGovernment), localities: make(map[string]string)}
			st.areas[areaKey] = ar
		}

		if localityKey := normalize(z.Locality); localityKey != "" {
			ar.localities[localityKey] = strings.TrimSpace(z.Locality)
		} else {
			ar.wholeArea = true
		}
	}

	return t
}

func (t *Table) Len() int {
	n := 0
	for _, st := range t.states {
		for _, ar := range st.areas {
			n += len(ar.localities)
			if ar.wholeArea {
				n++
			}
		}
	}
	return n
}

// States returns the served state names.
func (t *Table) States() []string {
	names := make([]string, 0, len(t.states))
	for _, st := range t.states {
		names = append(names, st.name)
	}
	return names
}

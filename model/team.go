package model

import "fmt"

type Team struct {
	ID       ID       `json:"id"`
	Letter   string   `json:"letter"`
	Alias    string   `json:"alias"`
	Color    string   `json:"color,omitempty"`
	Players  []Player `json:"players,omitempty"`
	Archived bool     `json:"archived,omitempty"`
}

// Label is the team's display form in pickers: "A - Virgins FC".
func (t *Team) Label() string {
	return fmt.Sprintf("%s - %s", t.Letter, t.Alias)
}

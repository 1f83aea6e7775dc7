package model

import "fmt"

type Player struct {
	ID                 ID         `json:"id"`
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	Alias              string     `json:"alias,omitempty"`
	PrimaryPosition    Position   `json:"primaryPosition"`
	AlternatePositions []Position `json:"alternatePositions,omitempty"`
	ImageURL           string     `json:"imageUrl,omitempty"`
	Archived           bool       `json:"archived,omitempty"`
}

func (p Player) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// DisplayName includes the nickname when the player has one:
// "Jamie Fenwick (Fenny)".
func (p Player) DisplayName() string {
	if p.Alias == "" {
		return p.FullName()
	}
	return fmt.Sprintf("%s (%s)", p.FullName(), p.Alias)
}

// CanPlay reports whether pos is the player's primary or one of their
// alternate positions.
func (p Player) CanPlay(pos Position) bool {
	if p.PrimaryPosition == pos {
		return true
	}
	for _, alt := range p.AlternatePositions {
		if alt == pos {
			return true
		}
	}
	return false
}

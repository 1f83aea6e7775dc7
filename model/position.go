package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = ""
	POS_GK      Position = "GK"
	POS_CB      Position = "CB"
	POS_RCB     Position = "RCB"
	POS_LCB     Position = "LCB"
	POS_RB      Position = "RB"
	POS_LB      Position = "LB"
	POS_RWB     Position = "RWB"
	POS_LWB     Position = "LWB"
	POS_CDM     Position = "CDM"
	POS_CM      Position = "CM"
	POS_LCM     Position = "LCM"
	POS_RCM     Position = "RCM"
	POS_CAM     Position = "CAM"
	POS_LM      Position = "LM"
	POS_RM      Position = "RM"
	POS_LAM     Position = "LAM"
	POS_RAM     Position = "RAM"
	POS_CF      Position = "CF"
	POS_ST      Position = "ST"
)

var positionLabels = map[Position]string{
	POS_GK:  "Goalkeeper",
	POS_CB:  "Center Back",
	POS_RCB: "Right Center Back",
	POS_LCB: "Left Center Back",
	POS_RB:  "Right Back",
	POS_LB:  "Left Back",
	POS_RWB: "Right Wing Back",
	POS_LWB: "Left Wing Back",
	POS_CDM: "Defensive Midfielder",
	POS_CM:  "Central Midfielder",
	POS_LCM: "Left Central Midfielder",
	POS_RCM: "Right Central Midfielder",
	POS_CAM: "Attacking Midfielder",
	POS_LM:  "Left Midfielder",
	POS_RM:  "Right Midfielder",
	POS_LAM: "Left Attacking Midfielder",
	POS_RAM: "Right Attacking Midfielder",
	POS_CF:  "Center Forward",
	POS_ST:  "Striker",
}

// Positions lists every position code in the order they are shown in pickers,
// goalkeeper first, then defense through attack.
func Positions() []Position {
	return []Position{
		POS_GK, POS_CB, POS_RCB, POS_LCB, POS_RB, POS_LB, POS_RWB, POS_LWB,
		POS_CDM, POS_CM, POS_LCM, POS_RCM, POS_CAM, POS_LM, POS_RM,
		POS_LAM, POS_RAM, POS_CF, POS_ST,
	}
}

func ParsePosition(pos string) Position {
	p := Position(strings.ToUpper(strings.TrimSpace(pos)))
	if _, ok := positionLabels[p]; ok {
		return p
	}
	return POS_UNKNOWN
}

// Label is the long display form used in pickers, e.g. "GK - Goalkeeper".
func (p Position) Label() string {
	l, ok := positionLabels[p]
	if !ok {
		return string(p)
	}
	return string(p) + " - " + l
}

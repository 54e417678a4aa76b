package state

import (
	"fmt"
)

// CanOpen reports whether an activation of slot would start or finish a turn.
// Slots out of range, face-up, matched or removed are ignored, as is any
// activation while two cards are already open.
func (s *State) CanOpen(slot int) bool {
	if slot < 0 || slot >= len(s.Cards) {
		return false
	}
	if len(s.Open) >= 2 {
		return false
	}
	c := s.Cards[slot]
	return !c.FaceVisible && !c.Matched && !c.Removed
}

// IsPair reports whether two distinct slots hold the same pair.
func (s *State) IsPair(a, b int) bool {
	return a != b && s.Cards[a].Spec.PairNumber == s.Cards[b].Spec.PairNumber
}

// Phase returns the current machine state name.
func (s *State) Phase() string {
	return s.FSM.Current()
}

func (s *State) assertTurn() {
	if len(s.Open) > 2 {
		panic(fmt.Sprintf("state: %d cards open in one turn", len(s.Open)))
	}
}

// Deferred hides are void once the board is complete, so the final reveal
// keeps every card on display.
func (s *State) removeCards(slots ...int) {
	if s.Complete {
		return
	}
	for _, slot := range slots {
		s.Cards[slot].FaceVisible = false
		s.Cards[slot].Removed = true
	}
}

func (s *State) hideFaces(slots ...int) {
	if s.Complete {
		return
	}
	for _, slot := range slots {
		if s.Cards[slot].Matched || s.Cards[slot].Removed {
			continue
		}
		s.Cards[slot].FaceVisible = false
	}
}

func (s *State) stopSpin() {
	for i := range s.Cards {
		s.Cards[i].Spinning = false
	}
}

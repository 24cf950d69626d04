package citygrid

import (
	"image"
)

// ActionType is the kind of change recorded for undo / redo
type ActionType string

const (
	ActionPlaceBuilding ActionType = "place_building"
	ActionPlaceRoad     ActionType = "place_road"
	ActionBulldoze      ActionType = "bulldoze"
)

// Action is a single successful change to the city.
// Enough is kept to redo it exactly, including the road tile that was
// chosen so isolated roads come back facing the same way.
type Action struct {
	Type ActionType
	At   image.Point

	// set when a building was placed or bulldozed
	Building BuildingKind `json:",omitempty"`
	Rotation Rotation     `json:",omitempty"`

	// set when a road was placed or bulldozed
	Tile RoadTile `json:",omitempty"`

	// tiles of the N, E, S, W neighbours before the action ("" for no road),
	// so that undo can turn neighbours left isolated back the way they were
	Around [4]RoadTile `json:"-"`
}

// history is a bounded undo stack with a redo stack that is thrown away
// whenever something new happens.
type history struct {
	max  int
	undo []*Action
	redo []*Action
}

func newHistory(max int) *history {
	return &history{max: max, undo: []*Action{}, redo: []*Action{}}
}

// record a brand new action
func (h *history) record(a *Action) {
	h.redo = h.redo[:0]
	h.pushUndo(a)
}

// pushUndo adds to the undo stack, forgetting the oldest action if we're full
func (h *history) pushUndo(a *Action) {
	h.undo = append(h.undo, a)
	if len(h.undo) > h.max {
		h.undo = h.undo[len(h.undo)-h.max:]
	}
}

func (h *history) pushRedo(a *Action) {
	h.redo = append(h.redo, a)
}

func (h *history) popUndo() *Action {
	if len(h.undo) == 0 {
		return nil
	}
	a := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return a
}

func (h *history) popRedo() *Action {
	if len(h.redo) == 0 {
		return nil
	}
	a := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return a
}

func (h *history) peekUndo() *Action {
	if len(h.undo) == 0 {
		return nil
	}
	return h.undo[len(h.undo)-1]
}

func (h *history) peekRedo() *Action {
	if len(h.redo) == 0 {
		return nil
	}
	return h.redo[len(h.redo)-1]
}

func (h *history) clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

package main

import "sort"

// Element is one tagged item of the paper scene. Coordinates are paper
// pixels; for text kinds (X, Y) is the top-left of the glyph box.
type Element struct {
	Kind      ElementKind
	Text      string
	X         float64
	Y         float64
	Height    float64
	Color     string
	Z         int
	StickerID int
	Theme     string
}

// Scene is the disposable projection of a session onto the paper. Elements
// are kept in insertion order; Items returns them back to front.
type Scene struct {
	elements []Element
}

func NewScene() *Scene {
	return &Scene{
		elements: make([]Element, 0),
	}
}

func (s *Scene) Add(e Element) {
	s.elements = append(s.elements, e)
}

// RemoveKinds drops every element tagged with one of kinds and reports how
// many were removed. Elements of other kinds keep their relative order.
func (s *Scene) RemoveKinds(kinds ...ElementKind) int {
	drop := make(map[ElementKind]bool, len(kinds))
	for _, k := range kinds {
		drop[k] = true
	}
	kept := s.elements[:0]
	removed := 0
	for _, e := range s.elements {
		if drop[e.Kind] {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(s.elements); i++ {
		s.elements[i] = Element{}
	}
	s.elements = kept
	return removed
}

func (s *Scene) Count(kind ElementKind) int {
	n := 0
	for _, e := range s.elements {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (s *Scene) Len() int {
	return len(s.elements)
}

// Items returns a copy of the elements ordered by Z band. Insertion order is
// preserved inside a band.
func (s *Scene) Items() []Element {
	out := make([]Element, len(s.elements))
	copy(out, s.elements)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Z < out[j].Z
	})
	return out
}

func (s *Scene) sticker(id int) int {
	for i, e := range s.elements {
		if e.Kind == KindSticker && e.StickerID == id {
			return i
		}
	}
	return -1
}

func (s *Scene) MoveSticker(id int, x, y float64) bool {
	i := s.sticker(id)
	if i == -1 {
		return false
	}
	s.elements[i].X = x
	s.elements[i].Y = y
	return true
}

func (s *Scene) RemoveSticker(id int) bool {
	i := s.sticker(id)
	if i == -1 {
		return false
	}
	s.elements = append(s.elements[:i], s.elements[i+1:]...)
	return true
}

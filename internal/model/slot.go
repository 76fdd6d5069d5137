package model

// Point represents a 2D placement on the table. The core never interprets
// it; only rendering code does.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CardSlot is a container holding an ordered sequence of card IDs at a
// position. Index 0 is the bottom, the last index is the top.
type CardSlot struct {
	ID    SlotID   `json:"id"`
	Pos   Point    `json:"pos"`
	Cards []CardID `json:"cards"`
}

// NewCardSlot creates an empty slot with the given ID and position.
func NewCardSlot(id SlotID, pos Point) *CardSlot {
	return &CardSlot{
		ID:    id,
		Pos:   pos,
		Cards: []CardID{},
	}
}

// Size returns the number of cards in the slot.
func (s *CardSlot) Size() int {
	return len(s.Cards)
}

// IsEmpty reports whether the slot holds no cards.
func (s *CardSlot) IsEmpty() bool {
	return len(s.Cards) == 0
}

// Contains reports whether the slot holds the given card.
func (s *CardSlot) Contains(id CardID) bool {
	return s.indexOf(id) >= 0
}

// TopCard returns the ID of the top card, or 0 if empty.
func (s *CardSlot) TopCard() CardID {
	if len(s.Cards) == 0 {
		return 0
	}
	return s.Cards[len(s.Cards)-1]
}

func (s *CardSlot) indexOf(id CardID) int {
	for i, c := range s.Cards {
		if c == id {
			return i
		}
	}
	return -1
}

// Add appends a card on top of the slot. Membership across slots is owned
// by the slot registry; callers there must detach the card from its old
// slot first.
func (s *CardSlot) Add(id CardID) {
	s.Cards = append(s.Cards, id)
}

// Remove takes the card out of the sequence, preserving the order of the
// remaining cards. Returns false if the card is not in this slot.
func (s *CardSlot) Remove(id CardID) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.Cards = append(s.Cards[:i], s.Cards[i+1:]...)
	return true
}

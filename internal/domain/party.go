package domain

import "fmt"

// Composition of the traveling party. Children pay half the adult price on
// ticketed and metered items.
type Party struct {
	Adults   int
	Children int
}

func (p Party) Validate() error {
	if p.Adults < 1 {
		return fmt.Errorf("party: adults must be at least 1, got %d", p.Adults)
	}
	if p.Children < 0 {
		return fmt.Errorf("party: children must not be negative, got %d", p.Children)
	}
	return nil
}

// Cost applies the adult-full, child-half price rule and floors to a whole
// currency unit.
func (p Party) Cost(basePrice float64) int {
	return int(basePrice*float64(p.Adults) + basePrice*0.5*float64(p.Children))
}

func (p Party) Size() int { return p.Adults + p.Children }

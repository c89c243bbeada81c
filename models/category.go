package models

import "fmt"

// Category groups links. Categories sharing SectionName form a section;
// every row of a section carries the same SectionOrder. CategoryOrder is
// the position of the category inside its section.
type Category struct {
	ID            int64
	Title         string
	SectionName   string
	SectionOrder  int
	CategoryOrder int
	RegionID      *int64
	Links         []Link
}

// Section is a read model of one section with its categories in order.
type Section struct {
	Name       string
	Order      int
	Categories []Category
}

// Direction is a single step of an adjacent swap.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// ParseDirection validates a direction received from a client.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case DirectionUp, DirectionDown:
		return d, nil
	default:
		return "", fmt.Errorf("unknown direction %q", s)
	}
}

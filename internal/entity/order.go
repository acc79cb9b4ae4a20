package entity

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDisplayOrder = errors.New("unknown display order")

// DisplayOrder controls the order in which the move list is shown. It never affects game logic.
type DisplayOrder string

const (
	Ascending  DisplayOrder = "ascending"
	Descending DisplayOrder = "descending"
)

func ParseDisplayOrder(s string) (DisplayOrder, error) {
	switch order := DisplayOrder(strings.ToLower(strings.TrimSpace(s))); order {
	case Ascending, Descending:
		return order, nil
	case "":
		return Ascending, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownDisplayOrder, s)
	}
}

func (that DisplayOrder) Toggle() DisplayOrder {
	if that == Descending {
		return Ascending
	}
	return Descending
}

func (that DisplayOrder) IsDescending() bool {
	return that == Descending
}

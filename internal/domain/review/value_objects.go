package review

import (
	"staybook/internal/pkg/errs"
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, errs.Mark(errs.Newf("rating %d out of range", v), errs.ErrInvalidRating)
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

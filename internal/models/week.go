package models

import "fmt"

// DateLayout is the ISO-8601 calendar date format used by both upstream APIs
const DateLayout = "2006-01-02"

// Week is a Monday through Friday span, both ends inclusive
type Week struct {
	Start string
	End   string
}

func (w Week) String() string {
	return fmt.Sprintf("(%s, %s)", w.Start, w.End)
}

package lib

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const orderNumberPrefix = "ORD"

// OrderNumberPrefix returns the date-bound prefix for order numbers created
// on the given day, e.g. "ORD-20260831".
func OrderNumberPrefix(t time.Time) string {
	return fmt.Sprintf("%s-%s", orderNumberPrefix, t.Format("20060102"))
}

// NextOrderNumber derives the next order number from the highest existing
// number of the day. The sequence starts at 1 each day; last is the empty
// string when no order exists for the date yet.
//
// Format: ORD-YYYYMMDD-NNNN.
func NextOrderNumber(last string, t time.Time) string {
	prefix := OrderNumberPrefix(t)

	seq := 1
	if strings.HasPrefix(last, prefix+"-") {
		if n, err := strconv.Atoi(strings.TrimPrefix(last, prefix+"-")); err == nil {
			seq = n + 1
		}
	}

	return fmt.Sprintf("%s-%04d", prefix, seq)
}

package dateutil

import (
	"fmt"
	"strconv"
	"time"
)

// Layout names one of the supported output formats.
type Layout int

const (
	DateTime                  Layout = iota // 2024-01-15 14:30:00.123
	Date                                    // 2024-01-15
	Time                                    // 14:30:00.123
	HTMLDateTime                            // 01/15/24 02:30:00 PM
	HTMLDate                                // 01/15/24
	HTMLTime                                // 02:30:00 PM
	HTMLTimeNoSeconds                       // 02:30 PM
	NumericDate                             // 20240115
	NumericTime                             // 143000123
	NumericTimeNoMilliseconds               // 143000
	DisplayableDate                         // January 15, 2024
	MonthName                               // January
	AbbreviatedMonthName                    // Jan
	Month                                   // 01
	Day                                     // 15
	Year                                    // 2024
)

var layouts = map[Layout]string{
	DateTime:                  "2006-01-02 15:04:05.000",
	Date:                      "2006-01-02",
	Time:                      "15:04:05.000",
	HTMLDateTime:              "01/02/06 03:04:05 PM",
	HTMLDate:                  "01/02/06",
	HTMLTime:                  "03:04:05 PM",
	HTMLTimeNoSeconds:         "03:04 PM",
	NumericDate:               "20060102",
	NumericTimeNoMilliseconds: "150405",
	DisplayableDate:           "January 02, 2006",
	MonthName:                 "January",
	AbbreviatedMonthName:      "Jan",
	Month:                     "01",
	Day:                       "02",
	Year:                      "2006",
}

var layoutNames = [...]string{
	"DateTime", "Date", "Time", "HTMLDateTime", "HTMLDate", "HTMLTime", "HTMLTimeNoSeconds",
	"NumericDate", "NumericTime", "NumericTimeNoMilliseconds", "DisplayableDate", "MonthName",
	"AbbreviatedMonthName", "Month", "Day", "Year",
}

func (l Layout) String() string {
	if l >= 0 && int(l) < len(layoutNames) {
		return layoutNames[l]
	}
	return "Layout(" + strconv.Itoa(int(l)) + ")"
}

// Format renders t using the named layout.
func Format(t time.Time, layout Layout) (string, error) {
	// time.Format only emits fractional seconds after a separator.
	if layout == NumericTime {
		return t.Format("150405") + fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond)), nil
	}

	l, ok := layouts[layout]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownLayout, layout)
	}
	return t.Format(l), nil
}

// MustFormat is like Format but panics on an unknown layout.
func MustFormat(t time.Time, layout Layout) string {
	s, err := Format(t, layout)
	if err != nil {
		panic(err)
	}
	return s
}

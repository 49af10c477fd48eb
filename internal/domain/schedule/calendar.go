package schedule

import (
	"errors"
	"time"
)

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidDay   = errors.New("day does not exist in the month")
)

// ValidateDate rejects a (day, month, year) triple that does not name a real
// calendar date, before time.Date gets a chance to normalize it into one.
func ValidateDate(day, month, year int) error {
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	if day < 1 || day > daysIn(month, year) {
		return ErrInvalidDay
	}
	return nil
}

func daysIn(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayCell is one cell of the month grid. Cells are derived from
// (month, year, today) and recomputed on every change; nothing here persists.
type DayCell struct {
	Day            int
	IsCurrentMonth bool
	IsPrevMonth    bool
	IsToday        bool
	IsPastDate     bool
}

// Week is one row of seven day cells, the unit of calendar pagination.
type Week []DayCell

// MonthGrid lays out the given month as 7-column weeks. The grid leads in with
// the trailing days of the previous month (labeled with their real day
// numbers) so that day 1 lands on its weekday (Sunday-first), and pads the
// tail with leading days of the next month up to a multiple of seven.
func MonthGrid(month, year int, today time.Time) ([]Week, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	daysInMonth := daysIn(month, year)
	firstWeekday := int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
	daysInPrevMonth := time.Date(year, time.Month(month), 0, 0, 0, 0, 0, time.UTC).Day()

	cells := make([]DayCell, 0, 42)

	for i := firstWeekday - 1; i >= 0; i-- {
		cells = append(cells, DayCell{
			Day:         daysInPrevMonth - i,
			IsPrevMonth: true,
		})
	}

	todayY, todayM, todayD := today.Date()
	for day := 1; day <= daysInMonth; day++ {
		isToday := day == todayD && time.Month(month) == todayM && year == todayY
		cells = append(cells, DayCell{
			Day:            day,
			IsCurrentMonth: true,
			IsToday:        isToday,
			IsPastDate:     dateBefore(year, month, day, todayY, int(todayM), todayD),
		})
	}

	for day := 1; len(cells)%7 != 0; day++ {
		cells = append(cells, DayCell{Day: day})
	}

	weeks := make([]Week, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, Week(cells[i:i+7]))
	}
	return weeks, nil
}

// WeekAt returns weeks[index], or an empty week when the index is out of
// range. Callers page with a Cursor, which never produces an invalid index;
// the permissive fallback mirrors how paging behaved historically.
func WeekAt(weeks []Week, index int) Week {
	if index < 0 || index >= len(weeks) {
		return Week{}
	}
	return weeks[index]
}

// WeekCount reports how many 7-day rows the month grid spans without
// materializing the cells.
func WeekCount(month, year int) (int, error) {
	if month < 1 || month > 12 {
		return 0, ErrInvalidMonth
	}
	daysInMonth := daysIn(month, year)
	firstWeekday := int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
	return (firstWeekday + daysInMonth + 6) / 7, nil
}

func dateBefore(y1, m1, d1, y2, m2, d2 int) bool {
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

// Cursor addresses one week of one month. The zero value is not meaningful;
// use NewCursor.
type Cursor struct {
	Month int
	Year  int
	Week  int
}

func NewCursor(now time.Time) Cursor {
	return Cursor{Month: int(now.Month()), Year: now.Year()}
}

// PrevMonth moves back one month, wrapping the year at January and resetting
// the week index.
func (c Cursor) PrevMonth() Cursor {
	if c.Month == 1 {
		return Cursor{Month: 12, Year: c.Year - 1}
	}
	return Cursor{Month: c.Month - 1, Year: c.Year}
}

// NextMonth moves forward one month, wrapping the year at December and
// resetting the week index.
func (c Cursor) NextMonth() Cursor {
	if c.Month == 12 {
		return Cursor{Month: 1, Year: c.Year + 1}
	}
	return Cursor{Month: c.Month + 1, Year: c.Year}
}

// PrevWeek pages back one week. Paging past the first week lands on the last
// week of the previous month. Month and week move together in one step; there
// is no intermediate state.
func (c Cursor) PrevWeek() Cursor {
	if c.Week > 0 {
		c.Week--
		return c
	}
	prev := c.PrevMonth()
	weeks, _ := WeekCount(prev.Month, prev.Year)
	prev.Week = weeks - 1
	return prev
}

// NextWeek pages forward one week, rolling into the next month's first week
// past the end of the grid.
func (c Cursor) NextWeek() Cursor {
	weeks, _ := WeekCount(c.Month, c.Year)
	if c.Week < weeks-1 {
		c.Week++
		return c
	}
	return c.NextMonth()
}

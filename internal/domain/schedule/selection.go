package schedule

// Selection is the in-progress multi-slot pick, held as ascending slot
// indices. Toggle maintains the invariant that a selection is always empty, a
// single index, or a gap-free ascending run of available slots.
type Selection []int

// Toggle is a pure reducer over (selection, tapped index): it never mutates
// its receiver and always returns the next selection.
//
// Tapping an already selected slot clears the whole selection, even when the
// slot has since turned reserved or past. Tapping an unavailable or
// out-of-range slot otherwise leaves the selection unchanged. Tapping a slot
// adjacent to the current run extends it when every index in the widened span
// is selected and available; any other tap restarts the selection at the
// tapped slot.
func (s Selection) Toggle(index int, slots []Slot) Selection {
	if index < 0 || index >= len(slots) {
		return s
	}
	if s.Contains(index) {
		return Selection{}
	}
	if !slots[index].Available {
		return s
	}

	if len(s) == 0 {
		return Selection{index}
	}

	lo, hi := s.Min(), s.Max()
	if index != lo-1 && index != hi+1 {
		return Selection{index}
	}

	if index < lo {
		lo = index
	} else {
		hi = index
	}

	candidate := make(Selection, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		if !slots[i].Available {
			return Selection{index}
		}
		candidate = append(candidate, i)
	}
	if !s.coversSpan(candidate, index) {
		return Selection{index}
	}
	return candidate
}

// coversSpan verifies the widened run contains no index that was absent from
// the prior selection other than the newly tapped one.
func (s Selection) coversSpan(candidate Selection, added int) bool {
	for _, i := range candidate {
		if i != added && !s.Contains(i) {
			return false
		}
	}
	return true
}

func (s Selection) Contains(index int) bool {
	for _, i := range s {
		if i == index {
			return true
		}
	}
	return false
}

func (s Selection) Min() int {
	min := s[0]
	for _, i := range s[1:] {
		if i < min {
			min = i
		}
	}
	return min
}

func (s Selection) Max() int {
	max := s[0]
	for _, i := range s[1:] {
		if i > max {
			max = i
		}
	}
	return max
}

// IsContiguous reports whether the selection is empty, a singleton, or a
// gap-free ascending run.
func (s Selection) IsContiguous() bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1]+1 {
			return false
		}
	}
	return true
}

// DurationMinutes is the total booked time implied by the selection.
func (s Selection) DurationMinutes() int {
	return len(s) * SlotMinutes
}

// TotalPrice is the flat per-slot rate summed over the selection.
func (s Selection) TotalPrice(rate float64) float64 {
	return float64(len(s)) * rate
}

package state

// Selection tracks the menu cursor and the content scroll offset for the
// active view. Movement clamps at both ends of the list; scrolling floors
// at zero and caps at the last content line.
type Selection struct {
	Index    int
	Scroll   int
	LockedIn bool
}

// LockIn enters content-scroll mode. Only meaningful when not locked.
func (s *Selection) LockIn() bool {
	if s.LockedIn {
		return false
	}
	s.LockedIn = true
	return true
}

// Unlock returns to list mode, leaving Index and Scroll untouched.
func (s *Selection) Unlock() bool {
	if !s.LockedIn {
		return false
	}
	s.LockedIn = false
	return true
}

// MoveUp handles the up direction. total is the menu length, lines the line
// count of the selected body.
func (s *Selection) MoveUp(total, lines int) bool {
	if s.LockedIn {
		if s.Scroll == 0 {
			return false
		}
		s.Scroll--
		return true
	}
	if s.Index <= 0 {
		return false
	}
	s.Index--
	s.Scroll = 0
	return true
}

// MoveDown handles the down direction, symmetric to MoveUp.
func (s *Selection) MoveDown(total, lines int) bool {
	if s.LockedIn {
		if lines > 0 && s.Scroll >= lines-1 {
			return false
		}
		s.Scroll++
		return true
	}
	if s.Index >= total-1 {
		return false
	}
	s.Index++
	s.Scroll = 0
	return true
}

// Clamp forces Index back into [0, total).
func (s *Selection) Clamp(total int) {
	if total <= 0 {
		s.Index = 0
		return
	}
	if s.Index < 0 {
		s.Index = 0
	}
	if s.Index >= total {
		s.Index = total - 1
	}
}

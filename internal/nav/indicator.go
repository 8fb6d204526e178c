package nav

// TabID identifies one of the four fixed tab bar destinations.
type TabID string

const (
	TabHome    TabID = "home"
	TabEvents  TabID = "events"
	TabTickets TabID = "tickets"
	TabProfile TabID = "profile"
)

// Tab bar geometry in pixels. The values are fixed by the design and are not
// configurable.
const (
	TabCount           = 4
	TabBarWidth        = 336
	TabBarPadding      = 12
	TabBarContentWidth = TabBarWidth - 2*TabBarPadding
	TabWidth           = 60
	TabGap             = (TabBarContentWidth - TabCount*TabWidth) / (TabCount - 1)
	TabStride          = TabWidth + TabGap

	// PixelsPerCell maps the pixel geometry onto terminal columns. Every
	// constant above is a multiple of it.
	PixelsPerCell = 12
)

// DefaultTabs is the fixed display order of the tab bar.
var DefaultTabs = [TabCount]TabID{TabHome, TabEvents, TabTickets, TabProfile}

// IsValid reports whether t is one of the four known tabs.
func (t TabID) IsValid() bool {
	for _, tab := range DefaultTabs {
		if tab == t {
			return true
		}
	}
	return false
}

// Title returns the display label for t.
func (t TabID) Title() string {
	switch t {
	case TabHome:
		return "Home"
	case TabEvents:
		return "Events"
	case TabTickets:
		return "Tickets"
	case TabProfile:
		return "Profile"
	default:
		return string(t)
	}
}

// ParseTab parses a user supplied tab name.
func ParseTab(raw string) (TabID, error) {
	tab := TabID(cleanToken(raw))
	if !tab.IsValid() {
		return "", newUnknownTabError(TabID(raw), DefaultTabs)
	}
	return tab, nil
}

// IndicatorOffset returns the pixel distance from the tab bar's left edge to
// the active tab highlight: padding + index*(tab width + gap). A tab missing
// from ordered is an error; it never falls back to the first tab.
func IndicatorOffset(ordered [TabCount]TabID, active TabID) (int, error) {
	index := indexOf(ordered, active)
	if index < 0 {
		return 0, newUnknownTabError(active, ordered)
	}
	return TabBarPadding + index*TabStride, nil
}

// CellOffset converts a pixel offset to terminal columns.
func CellOffset(px int) int {
	return px / PixelsPerCell
}

func indexOf(ordered [TabCount]TabID, active TabID) int {
	for i, tab := range ordered {
		if tab == active {
			return i
		}
	}
	return -1
}

// TabSelection is the tab bar state for one render.
type TabSelection struct {
	Active  TabID
	Ordered [TabCount]TabID
}

// NewTabSelection selects active within DefaultTabs.
func NewTabSelection(active TabID) TabSelection {
	return TabSelection{Active: active, Ordered: DefaultTabs}
}

// Index returns the position of the active tab.
func (s TabSelection) Index() (int, error) {
	index := indexOf(s.Ordered, s.Active)
	if index < 0 {
		return 0, newUnknownTabError(s.Active, s.Ordered)
	}
	return index, nil
}

// Offset returns the indicator offset in pixels.
func (s TabSelection) Offset() (int, error) {
	return IndicatorOffset(s.Ordered, s.Active)
}

// Shift moves the selection by delta positions, wrapping at both ends.
func (s TabSelection) Shift(delta int) (TabSelection, error) {
	index, err := s.Index()
	if err != nil {
		return s, err
	}
	next := ((index+delta)%TabCount + TabCount) % TabCount
	s.Active = s.Ordered[next]
	return s, nil
}

package header

// Size is a measured width and height in cells.
type Size struct {
	Width  float64
	Height float64
}

// Slot is a decoration whose size the title layout depends on.
type Slot uint8

const (
	SlotNavigationIcon Slot = 1 << iota
	SlotActions
	SlotTitle
)

// Phase is the lifecycle stage of a header instance.
type Phase int

const (
	// Uninitialized: nothing has been laid out since mount or Reset.
	Uninitialized Phase = iota
	// Measuring: layout has started and measurements are being captured.
	Measuring
	// Ready: every expected measurement is captured.
	Ready
)

func (p Phase) String() string {
	switch p {
	case Measuring:
		return "measuring"
	case Ready:
		return "ready"
	default:
		return "uninitialized"
	}
}

// measured is a write-once value. The set flag, not the zero value, marks
// whether it has been captured, so a genuine zero-width decoration counts.
type measured[T any] struct {
	value T
	set   bool
}

func (m *measured[T]) capture(v T) bool {
	if m.set {
		return false
	}
	m.value = v
	m.set = true
	return true
}

// Measurements is a snapshot of the one-shot layout cache.
type Measurements struct {
	NavIconWidth float64
	HasNavIcon   bool
	ActionsWidth float64
	HasActions   bool
	TitleSize    Size
	HasTitle     bool
}

type measurementCache struct {
	navIcon measured[float64]
	actions measured[float64]
	title   measured[Size]
}

func (m *measurementCache) captured() Slot {
	var s Slot
	if m.navIcon.set {
		s |= SlotNavigationIcon
	}
	if m.actions.set {
		s |= SlotActions
	}
	if m.title.set {
		s |= SlotTitle
	}
	return s
}

func (m *measurementCache) snapshot() Measurements {
	return Measurements{
		NavIconWidth: m.navIcon.value,
		HasNavIcon:   m.navIcon.set,
		ActionsWidth: m.actions.value,
		HasActions:   m.actions.set,
		TitleSize:    m.title.value,
		HasTitle:     m.title.set,
	}
}

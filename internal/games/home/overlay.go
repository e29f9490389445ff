package home

// Overlay is the modal window shown over the world, if any. Only one can be
// shown at a time; a bad-task popup replaces open notes.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayPopup
	OverlayNotes
)

// String returns the overlay name for logs.
func (o Overlay) String() string {
	switch o {
	case OverlayNone:
		return "none"
	case OverlayPopup:
		return "popup"
	case OverlayNotes:
		return "notes"
	default:
		return "unknown"
	}
}

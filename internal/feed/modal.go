package feed

// DefaultImage is shown when a record has no image or its image fails to load.
const DefaultImage = "ai.png"

const defaultImageAlt = "Update image"

// ModalState is the two-state lifecycle of the detail view.
type ModalState int

const (
	// ModalClosed means no record is shown and the overlay is hidden.
	ModalClosed ModalState = iota
	// ModalOpen means a record's detail is shown above the scrim.
	ModalOpen
)

func (s ModalState) String() string {
	if s == ModalOpen {
		return "open"
	}
	return "closed"
}

// Detail is everything the detail view displays for the open record.
type Detail struct {
	Title    string
	Chips    []string
	About    string
	Image    string
	ImageAlt string
	Body     string
}

// Modal is the detail view controller. The zero value is closed.
//
// Image resolution is a two step policy: the record image is attempted first
// and any load failure of a non-default source switches to DefaultImage. A
// failure of DefaultImage itself leaves it in place, so a broken default can
// never cause a failure loop. Each Open starts a new attempt identified by a
// sequence number; failures reported for an older attempt are ignored.
type Modal struct {
	state  ModalState
	record Record
	detail Detail
	seq    uint64
}

// NewModal returns a closed modal.
func NewModal() *Modal {
	return &Modal{}
}

// Open shows r, replacing any record already displayed. It returns the image
// attempt sequence that load failures must quote.
func (m *Modal) Open(r Record) uint64 {
	if m == nil {
		return 0
	}
	m.record = r.Clone()
	m.detail = detailFor(m.record)
	m.state = ModalOpen
	m.seq++
	return m.seq
}

// Close hides the modal. It reports whether the state changed.
func (m *Modal) Close() bool {
	if m == nil || m.state == ModalClosed {
		return false
	}
	m.state = ModalClosed
	return true
}

// State returns the current lifecycle state.
func (m *Modal) State() ModalState {
	if m == nil {
		return ModalClosed
	}
	return m.state
}

// IsOpen reports whether a record is displayed.
func (m *Modal) IsOpen() bool {
	return m.State() == ModalOpen
}

// Hidden mirrors the accessibility-hidden attribute; it is always the
// negation of IsOpen.
func (m *Modal) Hidden() bool {
	return !m.IsOpen()
}

// Record returns the displayed record while open.
func (m *Modal) Record() (Record, bool) {
	if !m.IsOpen() {
		return Record{}, false
	}
	return m.record.Clone(), true
}

// Detail returns the populated display fields while open.
func (m *Modal) Detail() (Detail, bool) {
	if !m.IsOpen() {
		return Detail{}, false
	}
	d := m.detail
	d.Chips = append([]string(nil), m.detail.Chips...)
	return d, true
}

// Seq returns the sequence of the current image attempt.
func (m *Modal) Seq() uint64 {
	if m == nil {
		return 0
	}
	return m.seq
}

// ImageFailed handles a load failure notification for attempt seq. It reports
// whether the image source was switched to DefaultImage. It may be called any
// number of times per open.
func (m *Modal) ImageFailed(seq uint64) bool {
	if !m.IsOpen() || seq != m.seq {
		return false
	}
	if m.detail.Image == DefaultImage {
		return false
	}
	m.detail.Image = DefaultImage
	return true
}

func detailFor(r Record) Detail {
	image := r.Image
	if image == "" {
		image = DefaultImage
	}
	alt := r.Title
	if alt == "" {
		alt = defaultImageAlt
	}
	body := r.Summary
	if body == "" {
		body = r.Details
	}
	return Detail{
		Title:    r.Title,
		Chips:    Chips(r),
		About:    r.About,
		Image:    image,
		ImageAlt: alt,
		Body:     body,
	}
}

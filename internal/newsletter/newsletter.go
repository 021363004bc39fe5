package newsletter

import (
	"regexp"
	"strings"
	"time"
)

// ConfirmDelay is how long a subscription takes to "complete".
const ConfirmDelay = 800 * time.Millisecond

// Status messages shown under the email field.
const (
	// MsgInvalid rejects a malformed address.
	MsgInvalid = "Please enter a valid email."
	// MsgSubscribing is shown while the confirmation is pending.
	MsgSubscribing = "Subscribing…"
	// MsgSubscribed replaces MsgSubscribing once the confirmation lands.
	MsgSubscribed = "You are subscribed! Check your inbox."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an address. Surrounding
// whitespace is ignored.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// Status is the form lifecycle.
type Status int

const (
	StatusIdle Status = iota
	StatusInvalid
	StatusPending
	StatusSubscribed
)

func (s Status) String() string {
	switch s {
	case StatusInvalid:
		return "invalid"
	case StatusPending:
		return "pending"
	case StatusSubscribed:
		return "subscribed"
	default:
		return "idle"
	}
}

// Form tracks the mocked subscription. Submissions are numbered; only the
// latest pending submission can complete.
type Form struct {
	status  Status
	message string
	email   string
	seq     uint64
}

// Status returns the current lifecycle state.
func (f *Form) Status() Status { return f.status }

// Message returns the user-facing status line.
func (f *Form) Message() string { return f.message }

// Email returns the address of the latest accepted submission.
func (f *Form) Email() string { return f.email }

// Submit validates email. On success it returns the sequence number the
// caller must pass to Complete after ConfirmDelay.
func (f *Form) Submit(email string) (uint64, bool) {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		f.status = StatusInvalid
		f.message = MsgInvalid
		return 0, false
	}
	f.seq++
	f.status = StatusPending
	f.message = MsgSubscribing
	f.email = email
	return f.seq, true
}

// Complete finishes the submission identified by seq. It reports whether the
// input field should be cleared.
func (f *Form) Complete(seq uint64) bool {
	if f.status != StatusPending || seq != f.seq {
		return false
	}
	f.status = StatusSubscribed
	f.message = MsgSubscribed
	return true
}

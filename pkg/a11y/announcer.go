// Package a11y holds the small accessibility state machines rendered views
// consult: a VoiceOver announcer, a keyboard focus ring, and a high-contrast
// color transform. Each manager owns mutable session state and expects a
// single logical writer; none of them can fail — every input has a defined
// no-op or identity behaviour.
package a11y

// AnnouncementPriority is informational metadata attached to an announcement.
// It never reorders or filters announcements.
type AnnouncementPriority string

const (
	PriorityLow    AnnouncementPriority = "low"
	PriorityNormal AnnouncementPriority = "normal"
	PriorityHigh   AnnouncementPriority = "high"
)

// Announcer tracks the most recent VoiceOver announcement. Last write wins;
// messages are stored verbatim with no truncation, including the empty string.
type Announcer struct {
	last         string
	lastPriority AnnouncementPriority
	count        int
}

// NewAnnouncer constructs an announcer with no announcement yet.
func NewAnnouncer() *Announcer {
	return &Announcer{lastPriority: PriorityNormal}
}

// Announce records the message unconditionally.
func (a *Announcer) Announce(message string, priority AnnouncementPriority) {
	if a == nil {
		return
	}
	if priority == "" {
		priority = PriorityNormal
	}
	a.last = message
	a.lastPriority = priority
	a.count++
}

// LastAnnouncement returns the most recent message verbatim.
func (a *Announcer) LastAnnouncement() string {
	if a == nil {
		return ""
	}
	return a.last
}

// LastPriority returns the priority metadata of the most recent announcement.
func (a *Announcer) LastPriority() AnnouncementPriority {
	if a == nil {
		return PriorityNormal
	}
	return a.lastPriority
}

// AnnouncementCount reports how many announcements were made this session.
func (a *Announcer) AnnouncementCount() int {
	if a == nil {
		return 0
	}
	return a.count
}

// Reset clears the session state.
func (a *Announcer) Reset() {
	if a == nil {
		return
	}
	a.last = ""
	a.lastPriority = PriorityNormal
	a.count = 0
}

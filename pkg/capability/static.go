package capability

// Static is a Provider whose snapshot is set explicitly. It is the injection
// seam for tests: every flag has a setter, and Reset restores the platform
// defaults so one test cannot leak overrides into the next.
type Static struct {
	snapshot Snapshot
}

// NewStatic builds a provider seeded from the platform defaults.
func NewStatic(platform Platform) *Static {
	return &Static{snapshot: Defaults(platform)}
}

// NewStaticSnapshot builds a provider around an explicit snapshot.
func NewStaticSnapshot(snapshot Snapshot) *Static {
	return &Static{snapshot: snapshot}
}

// Capabilities returns the current snapshot.
func (s *Static) Capabilities() Snapshot {
	if s == nil {
		return Defaults(PlatformUnknown)
	}
	return s.snapshot
}

// Reset restores the defaults for the currently configured platform.
func (s *Static) Reset() {
	s.snapshot = Defaults(s.snapshot.Platform)
}

// SetDevice overrides the device form factor.
func (s *Static) SetDevice(device DeviceType) { s.snapshot.Device = device }

// SetTouch overrides touch support.
func (s *Static) SetTouch(enabled bool) { s.snapshot.SupportsTouch = enabled }

// SetHover overrides hover support.
func (s *Static) SetHover(enabled bool) { s.snapshot.SupportsHover = enabled }

// SetHaptics overrides haptic support.
func (s *Static) SetHaptics(enabled bool) { s.snapshot.SupportsHaptics = enabled }

// SetVoiceOver overrides the VoiceOver flag.
func (s *Static) SetVoiceOver(enabled bool) { s.snapshot.SupportsVoiceOver = enabled }

// SetSwitchControl overrides the switch-control flag.
func (s *Static) SetSwitchControl(enabled bool) { s.snapshot.SupportsSwitchControl = enabled }

// SetAssistiveTouch overrides the assistive-touch flag.
func (s *Static) SetAssistiveTouch(enabled bool) { s.snapshot.SupportsAssistiveTouch = enabled }

// SetVision overrides OCR/vision availability.
func (s *Static) SetVision(enabled bool) { s.snapshot.VisionAvailable = enabled }

// Package capability models the read-only platform snapshot the strategy
// layer branches on. The decision core never inspects compile-time platform
// identity; it only consumes capability values, so any snapshot — including a
// fully synthetic one — drives the same code paths.
package capability

// Platform identifies the host platform family.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformMacOS   Platform = "macos"
	PlatformTVOS    Platform = "tvos"
	PlatformWatchOS Platform = "watchos"
	PlatformWeb     Platform = "web"
	PlatformUnknown Platform = "unknown"
)

// DeviceType identifies the physical form factor.
type DeviceType string

const (
	DevicePhone   DeviceType = "phone"
	DevicePad     DeviceType = "pad"
	DeviceDesktop DeviceType = "desktop"
	DeviceTV      DeviceType = "tv"
	DeviceWatch   DeviceType = "watch"
	DeviceUnknown DeviceType = "unknown"
)

// Snapshot is the immutable capability set consumed per decision call.
type Snapshot struct {
	Platform               Platform   `json:"platform"`
	Device                 DeviceType `json:"device"`
	SupportsTouch          bool       `json:"supportsTouch"`
	SupportsHover          bool       `json:"supportsHover"`
	SupportsHaptics        bool       `json:"supportsHaptics"`
	SupportsVoiceOver      bool       `json:"supportsVoiceOver"`
	SupportsSwitchControl  bool       `json:"supportsSwitchControl"`
	SupportsAssistiveTouch bool       `json:"supportsAssistiveTouch"`
	VisionAvailable        bool       `json:"visionAvailable"`
}

// Provider supplies capability snapshots. Implementations must return a value
// the caller can retain; the core never mutates it.
type Provider interface {
	Capabilities() Snapshot
}

// Defaults returns the conventional capability set for a platform. Unknown
// platforms map to a conservative snapshot with every capability disabled.
func Defaults(platform Platform) Snapshot {
	switch platform {
	case PlatformIOS:
		return Snapshot{
			Platform:               PlatformIOS,
			Device:                 DevicePhone,
			SupportsTouch:          true,
			SupportsHaptics:        true,
			SupportsAssistiveTouch: true,
			VisionAvailable:        true,
		}
	case PlatformMacOS:
		return Snapshot{
			Platform:        PlatformMacOS,
			Device:          DeviceDesktop,
			SupportsHover:   true,
			VisionAvailable: true,
		}
	case PlatformTVOS:
		return Snapshot{
			Platform: PlatformTVOS,
			Device:   DeviceTV,
		}
	case PlatformWatchOS:
		return Snapshot{
			Platform:        PlatformWatchOS,
			Device:          DeviceWatch,
			SupportsTouch:   true,
			SupportsHaptics: true,
		}
	case PlatformWeb:
		return Snapshot{
			Platform:      PlatformWeb,
			Device:        DeviceDesktop,
			SupportsHover: true,
		}
	default:
		return Snapshot{Platform: PlatformUnknown, Device: DeviceUnknown}
	}
}

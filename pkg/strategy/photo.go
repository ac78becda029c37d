package strategy

import (
	"github.com/goliatone/go-adaptive/pkg/capability"
)

// PhotoPurpose enumerates the use cases a photo surface serves.
type PhotoPurpose string

const (
	PhotoProfile   PhotoPurpose = "profile"
	PhotoDocument  PhotoPurpose = "document"
	PhotoReceipt   PhotoPurpose = "receipt"
	PhotoGallery   PhotoPurpose = "gallery"
	PhotoPreview   PhotoPurpose = "preview"
	PhotoReference PhotoPurpose = "reference"
)

// CaptureStrategy is the closed set of photo acquisition flows.
type CaptureStrategy string

const (
	CaptureCamera       CaptureStrategy = "camera"
	CapturePhotoLibrary CaptureStrategy = "photoLibrary"
	CaptureBoth         CaptureStrategy = "both"
)

// DisplayStrategy is the closed set of photo rendering modes.
type DisplayStrategy string

const (
	DisplayThumbnail  DisplayStrategy = "thumbnail"
	DisplayFullSize   DisplayStrategy = "fullSize"
	DisplayAspectFit  DisplayStrategy = "aspectFit"
	DisplayAspectFill DisplayStrategy = "aspectFill"
	DisplayRounded    DisplayStrategy = "rounded"
)

// Size is a simple width/height pair in points.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PhotoContext bundles the signals the photo selectors consume.
type PhotoContext struct {
	ScreenSize      Size
	AvailableSpace  Size
	UserPreferences map[string]string
	Capabilities    capability.Snapshot
}

// captureTable keys the acquisition decision on purpose; rows are adjusted by
// form factor afterwards since only handheld devices carry a usable camera.
var captureTable = map[PhotoPurpose]CaptureStrategy{
	PhotoProfile:   CaptureBoth,
	PhotoDocument:  CaptureCamera,
	PhotoReceipt:   CaptureCamera,
	PhotoGallery:   CapturePhotoLibrary,
	PhotoPreview:   CapturePhotoLibrary,
	PhotoReference: CaptureBoth,
}

// SelectPhotoCapture picks the acquisition flow for a purpose. The result is
// always one of the closed capture set; unknown purposes fall back to the
// library picker.
func SelectPhotoCapture(purpose PhotoPurpose, ctx PhotoContext) CaptureStrategy {
	strategy, ok := captureTable[purpose]
	if !ok {
		strategy = CapturePhotoLibrary
	}

	// Form factors without a camera can only pick from the library.
	switch ctx.Capabilities.Device {
	case capability.DeviceDesktop, capability.DeviceTV:
		return CapturePhotoLibrary
	}

	if pref := ctx.UserPreferences["capture"]; pref != "" {
		switch CaptureStrategy(pref) {
		case CaptureCamera, CapturePhotoLibrary, CaptureBoth:
			return CaptureStrategy(pref)
		}
	}

	return strategy
}

// displayTable keys the rendering decision on purpose.
var displayTable = map[PhotoPurpose]DisplayStrategy{
	PhotoProfile:   DisplayRounded,
	PhotoDocument:  DisplayAspectFit,
	PhotoReceipt:   DisplayAspectFit,
	PhotoGallery:   DisplayThumbnail,
	PhotoPreview:   DisplayAspectFill,
	PhotoReference: DisplayThumbnail,
}

// SelectPhotoDisplay picks the rendering mode for a purpose. Tight spaces
// degrade to thumbnails; generous spaces promote full-size rendering. The
// result is always one of the closed display set.
func SelectPhotoDisplay(purpose PhotoPurpose, ctx PhotoContext) DisplayStrategy {
	strategy, ok := displayTable[purpose]
	if !ok {
		strategy = DisplayAspectFit
	}

	space := ctx.AvailableSpace
	if space.Width > 0 && space.Width < 120 {
		return DisplayThumbnail
	}
	if purpose == PhotoGallery && space.Width >= 800 {
		return DisplayFullSize
	}

	return strategy
}

package vkboot

import "github.com/cockroachdb/errors"

// Every failure returned by Bootstrap wraps exactly one of these sentinels.
// They are deliberately distinct: ErrNoDeviceFound means no driver reported
// any GPU at all, while ErrNoSuitableDevice means hardware exists but fails
// the requirements. Classify with errors.Is.
var (
	// ErrMissingCapability marks a required instance layer or extension that
	// the runtime does not provide. The message names every missing item.
	ErrMissingCapability = errors.New("missing required capability")

	// ErrNoDeviceFound marks an empty physical-device enumeration.
	ErrNoDeviceFound = errors.New("no vulkan-capable device found")

	// ErrNoSuitableDevice marks a nonempty enumeration in which no device
	// satisfies the requirements.
	ErrNoSuitableDevice = errors.New("no suitable vulkan device")

	// ErrUnsupportedQueueTopology marks a selected device with no single
	// queue family supporting both graphics and presentation.
	ErrUnsupportedQueueTopology = errors.New("no queue family supports both graphics and present")

	// ErrSurfaceCreationFailed marks a failure to bind the native window to
	// a vulkan surface.
	ErrSurfaceCreationFailed = errors.New("window surface creation failed")
)

package vkboot

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrMissingCapability,
		ErrNoDeviceFound,
		ErrNoSuitableDevice,
		ErrUnsupportedQueueTopology,
		ErrSurfaceCreationFailed,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v matches %v, each failure kind must stay distinct", a, b)
			}
		}
	}
}

func TestWrappedSentinelClassifies(t *testing.T) {
	err := errors.Wrapf(ErrMissingCapability, "instance layers not supported: %s", "VK_LAYER_KHRONOS_validation")

	if !errors.Is(err, ErrMissingCapability) {
		t.Fatal("wrapping must preserve the sentinel classification")
	}
	if got := err.Error(); !errors.Is(err, ErrMissingCapability) || got == ErrMissingCapability.Error() {
		t.Errorf("wrapped error %q should carry the missing name as context", got)
	}
}

func TestMarkedErrorClassifies(t *testing.T) {
	cause := errors.New("SDL_Vulkan_CreateSurface failed")
	err := errors.Mark(cause, ErrSurfaceCreationFailed)

	if !errors.Is(err, ErrSurfaceCreationFailed) {
		t.Fatal("marked error must classify as ErrSurfaceCreationFailed")
	}
}

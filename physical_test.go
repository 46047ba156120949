package vkboot

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
)

// capableProfile returns a synthetic device satisfying
// DefaultDeviceRequirements.
func capableProfile(name string) *DeviceProfile {
	return &DeviceProfile{
		Name:       name,
		APIVersion: common.Vulkan1_2,
		QueueFamilies: []core1_0.QueueFamilyProperties{
			{QueueFlags: core1_0.QueueGraphics},
		},
		Extensions: map[string]struct{}{
			khr_swapchain.ExtensionName:       {},
			DynamicRenderingExtensionName:     {},
			ExtendedDynamicStateExtensionName: {},
		},
		Features: FeatureSet{
			DynamicRendering:     true,
			ExtendedDynamicState: true,
		},
	}
}

func TestCheckPassesCapableDevice(t *testing.T) {
	shortfalls := DefaultDeviceRequirements().Check(capableProfile("gpu"))
	if len(shortfalls) != 0 {
		t.Errorf("Check reported shortfalls for a capable device: %v", shortfalls)
	}
}

func TestCheckAPIVersion(t *testing.T) {
	profile := capableProfile("gpu")
	profile.APIVersion = common.Vulkan1_0

	shortfalls := DefaultDeviceRequirements().Check(profile)
	if len(shortfalls) != 1 || !strings.Contains(shortfalls[0], "api version") {
		t.Errorf("Check = %v, expected a single api-version shortfall", shortfalls)
	}
}

func TestCheckGraphicsQueueFamily(t *testing.T) {
	profile := capableProfile("gpu")
	profile.QueueFamilies = []core1_0.QueueFamilyProperties{{QueueFlags: 0}}

	shortfalls := DefaultDeviceRequirements().Check(profile)
	if len(shortfalls) != 1 || !strings.Contains(shortfalls[0], "queue family") {
		t.Errorf("Check = %v, expected a single queue-family shortfall", shortfalls)
	}
}

func TestCheckExtensions(t *testing.T) {
	profile := capableProfile("gpu")
	delete(profile.Extensions, DynamicRenderingExtensionName)
	delete(profile.Extensions, ExtendedDynamicStateExtensionName)

	shortfalls := DefaultDeviceRequirements().Check(profile)
	if len(shortfalls) != 1 {
		t.Fatalf("Check = %v, expected a single extensions shortfall", shortfalls)
	}
	// Both missing names are collected into the one report.
	if !strings.Contains(shortfalls[0], DynamicRenderingExtensionName) ||
		!strings.Contains(shortfalls[0], ExtendedDynamicStateExtensionName) {
		t.Errorf("shortfall %q does not name both missing extensions", shortfalls[0])
	}
}

func TestCheckFeaturesIndependentlyOfExtensions(t *testing.T) {
	// Extensions present but feature flags off: clause (d) must fire alone.
	profile := capableProfile("gpu")
	profile.Features = FeatureSet{}

	shortfalls := DefaultDeviceRequirements().Check(profile)
	if len(shortfalls) != 1 || !strings.Contains(shortfalls[0], "missing features") {
		t.Errorf("Check = %v, expected a single features shortfall", shortfalls)
	}
	if !strings.Contains(shortfalls[0], "dynamicRendering") || !strings.Contains(shortfalls[0], "extendedDynamicState") {
		t.Errorf("shortfall %q does not name both missing features", shortfalls[0])
	}
}

func TestFeatureSetMissing(t *testing.T) {
	required := FeatureSet{DynamicRendering: true, ExtendedDynamicState: true, SamplerAnisotropy: true}

	missing := required.Missing(FeatureSet{ExtendedDynamicState: true})
	if len(missing) != 2 {
		t.Fatalf("Missing = %v, expected two entries", missing)
	}
	if missing[0] != "dynamicRendering" || missing[1] != "samplerAnisotropy" {
		t.Errorf("Missing = %v, expected dynamicRendering and samplerAnisotropy", missing)
	}

	if got := (FeatureSet{}).Missing(FeatureSet{}); len(got) != 0 {
		t.Errorf("Missing with no requirements = %v, expected none", got)
	}
}

func TestSelectDeviceFirstMatch(t *testing.T) {
	// Candidate 0 fails only the extension clause; candidate 1 passes all
	// four, so selection must land on index 1.
	incapable := capableProfile("integrated")
	delete(incapable.Extensions, khr_swapchain.ExtensionName)
	capable := capableProfile("discrete")

	selected, err := SelectDevice([]*DeviceProfile{incapable, capable}, DefaultDeviceRequirements())
	if err != nil {
		t.Fatalf("SelectDevice: %+v", err)
	}
	if selected != 1 {
		t.Errorf("SelectDevice = %d, expected 1", selected)
	}
}

func TestSelectDeviceEnumerationOrder(t *testing.T) {
	// No scoring: with several qualifying devices the first one wins.
	selected, err := SelectDevice([]*DeviceProfile{capableProfile("first"), capableProfile("second")}, DefaultDeviceRequirements())
	if err != nil {
		t.Fatalf("SelectDevice: %+v", err)
	}
	if selected != 0 {
		t.Errorf("SelectDevice = %d, expected 0", selected)
	}
}

func TestSelectDeviceEmptyEnumeration(t *testing.T) {
	_, err := SelectDevice(nil, DefaultDeviceRequirements())
	if !errors.Is(err, ErrNoDeviceFound) {
		t.Fatalf("SelectDevice(nil) = %v, expected ErrNoDeviceFound", err)
	}
	if errors.Is(err, ErrNoSuitableDevice) {
		t.Errorf("empty enumeration must not classify as ErrNoSuitableDevice")
	}
}

func TestSelectDeviceNoneSuitable(t *testing.T) {
	profile := capableProfile("llvmpipe")
	profile.Features = FeatureSet{}

	_, err := SelectDevice([]*DeviceProfile{profile}, DefaultDeviceRequirements())
	if !errors.Is(err, ErrNoSuitableDevice) {
		t.Fatalf("SelectDevice = %v, expected ErrNoSuitableDevice", err)
	}
	if errors.Is(err, ErrNoDeviceFound) {
		t.Errorf("nonempty enumeration must not classify as ErrNoDeviceFound")
	}
	// The failure names the device and its shortfalls.
	if !strings.Contains(err.Error(), "llvmpipe") {
		t.Errorf("error %q does not name the rejected device", err.Error())
	}
}

package vkboot

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// DeviceProfile is a read-only snapshot of one physical device's reported
// capabilities, captured fresh for each selection pass.
type DeviceProfile struct {
	Name          string
	APIVersion    common.APIVersion
	QueueFamilies []core1_0.QueueFamilyProperties
	Extensions    map[string]struct{}
	Features      FeatureSet
}

// SupportsGraphics reports whether any queue family advertises graphics work.
func (p *DeviceProfile) SupportsGraphics() bool {
	for _, family := range p.QueueFamilies {
		if family.QueueFlags&core1_0.QueueGraphics != 0 {
			return true
		}
	}
	return false
}

// FeatureSet names the device features the bootstrap can require. The live
// snapshot fills DynamicRendering and ExtendedDynamicState from the matching
// extensions, which is how 1.2-era drivers advertise them.
type FeatureSet struct {
	DynamicRendering     bool
	ExtendedDynamicState bool
	SamplerAnisotropy    bool
}

// Missing lists the features required by f but absent from have, using the
// API's own feature names.
func (f FeatureSet) Missing(have FeatureSet) []string {
	var missing []string
	if f.DynamicRendering && !have.DynamicRendering {
		missing = append(missing, "dynamicRendering")
	}
	if f.ExtendedDynamicState && !have.ExtendedDynamicState {
		missing = append(missing, "extendedDynamicState")
	}
	if f.SamplerAnisotropy && !have.SamplerAnisotropy {
		missing = append(missing, "samplerAnisotropy")
	}
	return missing
}

// DeviceRequirements is the predicate a physical device must satisfy.
type DeviceRequirements struct {
	MinimumAPIVersion common.APIVersion
	Extensions        []string
	Features          FeatureSet
}

// Check evaluates the four suitability clauses against a profile and returns
// one message per shortfall. An empty result means the device qualifies.
func (r DeviceRequirements) Check(profile *DeviceProfile) []string {
	var shortfalls []string

	if profile.APIVersion < r.MinimumAPIVersion {
		shortfalls = append(shortfalls, fmt.Sprintf("api version %d below required %d", profile.APIVersion, r.MinimumAPIVersion))
	}

	if !profile.SupportsGraphics() {
		shortfalls = append(shortfalls, "no graphics-capable queue family")
	}

	missingExt := missingNames(r.Extensions, func(name string) bool {
		_, ok := profile.Extensions[name]
		return ok
	})
	if len(missingExt) > 0 {
		shortfalls = append(shortfalls, fmt.Sprintf("missing extensions %s", strings.Join(missingExt, ", ")))
	}

	if missingFeatures := r.Features.Missing(profile.Features); len(missingFeatures) > 0 {
		shortfalls = append(shortfalls, fmt.Sprintf("missing features %s", strings.Join(missingFeatures, ", ")))
	}

	return shortfalls
}

// SelectDevice returns the index of the first profile satisfying the
// requirements, scanning in enumeration order. There is no scoring: the first
// qualifying device wins. An empty profile list fails with ErrNoDeviceFound;
// a nonempty list with no qualifying entry fails with ErrNoSuitableDevice,
// naming every device's shortfalls.
func SelectDevice(profiles []*DeviceProfile, requirements DeviceRequirements) (int, error) {
	if len(profiles) == 0 {
		return -1, errors.Wrapf(ErrNoDeviceFound, "enumeration returned no devices")
	}

	var reasons []string
	for i, profile := range profiles {
		shortfalls := requirements.Check(profile)
		if len(shortfalls) == 0 {
			return i, nil
		}
		reasons = append(reasons, fmt.Sprintf("%s: %s", profile.Name, strings.Join(shortfalls, "; ")))
	}

	return -1, errors.Wrapf(ErrNoSuitableDevice, "%s", strings.Join(reasons, " | "))
}

// queryDeviceProfile snapshots a live physical device.
func queryDeviceProfile(device core1_0.PhysicalDevice) (*DeviceProfile, error) {
	properties, err := device.Properties()
	if err != nil {
		return nil, err
	}

	extensions, _, err := device.EnumerateDeviceExtensionProperties()
	if err != nil {
		return nil, err
	}

	names := make(map[string]struct{}, len(extensions))
	for name := range extensions {
		names[name] = struct{}{}
	}
	_, dynamicRendering := names[DynamicRenderingExtensionName]
	_, extendedDynamicState := names[ExtendedDynamicStateExtensionName]

	features := device.Features()

	families := device.QueueFamilyProperties()
	queueFamilies := make([]core1_0.QueueFamilyProperties, 0, len(families))
	for _, family := range families {
		queueFamilies = append(queueFamilies, *family)
	}

	return &DeviceProfile{
		Name:          properties.DriverName,
		APIVersion:    properties.APIVersion,
		QueueFamilies: queueFamilies,
		Extensions:    names,
		Features: FeatureSet{
			DynamicRendering:     dynamicRendering,
			ExtendedDynamicState: extendedDynamicState,
			SamplerAnisotropy:    features.SamplerAnisotropy,
		},
	}, nil
}

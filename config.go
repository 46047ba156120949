package vkboot

import (
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
)

// Device extension names gated by the default requirements. On 1.2-era
// drivers dynamic rendering and extended dynamic state are advertised through
// these extensions.
const (
	DynamicRenderingExtensionName     = "VK_KHR_dynamic_rendering"
	ExtendedDynamicStateExtensionName = "VK_EXT_extended_dynamic_state"
)

const validationLayerName = "VK_LAYER_KHRONOS_validation"

// Config carries everything Bootstrap needs beyond the window itself.
type Config struct {
	AppName       string
	AppVersion    common.Version
	EngineName    string
	EngineVersion common.Version

	// APIVersion is requested at instance creation. DefaultConfig sets the
	// highest version the binding supports.
	APIVersion common.APIVersion

	// Validation enables the Khronos validation layer and the diagnostics
	// sink. Bootstrap fails with ErrMissingCapability if the layer is not
	// installed.
	Validation bool

	// VerboseDiagnostics additionally registers info/verbose messenger
	// severities; the sink routes them to the debug log level.
	VerboseDiagnostics bool

	// Layers and InstanceExtensions are required in addition to whatever
	// Validation and the window demand. Missing names fail bootstrap.
	Layers             []string
	InstanceExtensions []string

	// Device holds the requirements a physical device must satisfy.
	Device DeviceRequirements

	// Log receives diagnostics-sink output and stage progress. Defaults to
	// the logrus standard logger.
	Log logrus.FieldLogger
}

// DefaultConfig returns the configuration the demo uses: validation on,
// swapchain plus dynamic-rendering and extended-dynamic-state capability
// required of the device.
func DefaultConfig(appName string) Config {
	return Config{
		AppName:       appName,
		AppVersion:    common.CreateVersion(1, 0, 0),
		EngineName:    "No Engine",
		EngineVersion: common.CreateVersion(1, 0, 0),
		APIVersion:    common.Vulkan1_2,
		Validation:    true,
		Device:        DefaultDeviceRequirements(),
		Log:           logrus.StandardLogger(),
	}
}

// DefaultDeviceRequirements requires presentation support plus the dynamic
// rendering and extended dynamic state capabilities.
func DefaultDeviceRequirements() DeviceRequirements {
	return DeviceRequirements{
		MinimumAPIVersion: common.Vulkan1_2,
		Extensions: []string{
			khr_swapchain.ExtensionName,
			DynamicRenderingExtensionName,
			ExtendedDynamicStateExtensionName,
		},
		Features: FeatureSet{
			DynamicRendering:     true,
			ExtendedDynamicState: true,
		},
	}
}

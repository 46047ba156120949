package vkboot

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_portability_subset"
)

// pickPhysicalDevice snapshots every enumerated device and selects the first
// one satisfying the configured requirements.
func (c *Context) pickPhysicalDevice() error {
	physicalDevices, _, err := c.Instance.EnumeratePhysicalDevices()
	if err != nil {
		return err
	}

	profiles := make([]*DeviceProfile, 0, len(physicalDevices))
	for _, device := range physicalDevices {
		profile, err := queryDeviceProfile(device)
		if err != nil {
			return err
		}
		profiles = append(profiles, profile)
	}

	selected, err := SelectDevice(profiles, c.config.Device)
	if err != nil {
		return err
	}

	c.PhysicalDevice = physicalDevices[selected]
	c.Profile = profiles[selected]

	return nil
}

// createLogicalDevice requires one queue family serving both graphics and
// present, creates the device with that single family enabled, and resolves
// the two queue handles, which alias the same underlying queue.
func (c *Context) createLogicalDevice() error {
	caps, err := queryQueueFamilyCaps(c.PhysicalDevice, c.Surface)
	if err != nil {
		return err
	}

	pick := PickQueueFamily(caps)
	if !pick.IsComplete() {
		return errors.Wrapf(ErrUnsupportedQueueTopology, "graphics-only family %s, present-only family %s",
			familyIndexString(pick.Graphics), familyIndexString(pick.Present))
	}
	c.QueueFamilyIndex = *pick.Combined

	extensionNames := append([]string{}, c.config.Device.Extensions...)

	// Portability devices must have the subset extension enabled whenever
	// they advertise it.
	if _, ok := c.Profile.Extensions[khr_portability_subset.ExtensionName]; ok {
		extensionNames = append(extensionNames, khr_portability_subset.ExtensionName)
	}

	queuePriority := float32(1.0)
	device, _, err := c.PhysicalDevice.CreateDevice(nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos: []core1_0.DeviceQueueCreateInfo{
			{
				QueueFamilyIndex: c.QueueFamilyIndex,
				QueuePriorities:  []float32{queuePriority},
			},
		},
		// Dynamic rendering and extended dynamic state ride their extensions;
		// the core feature block carries only the classic flags.
		EnabledFeatures: &core1_0.PhysicalDeviceFeatures{
			SamplerAnisotropy: c.config.Device.Features.SamplerAnisotropy,
		},
		EnabledExtensionNames: extensionNames,
	})
	if err != nil {
		return err
	}
	c.Device = device

	c.GraphicsQueue = device.GetQueue(c.QueueFamilyIndex, 0)
	c.PresentQueue = device.GetQueue(c.QueueFamilyIndex, 0)

	return nil
}

func familyIndexString(idx *int) string {
	if idx == nil {
		return "none"
	}
	return strconv.Itoa(*idx)
}

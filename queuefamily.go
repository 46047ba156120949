package vkboot

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
)

// QueueFamilyCaps records, for one queue family index, the two capabilities
// the bootstrap cares about.
type QueueFamilyCaps struct {
	Graphics bool
	Present  bool
}

// QueueFamilyPick is the outcome of scanning a device's queue families.
// Combined is the first index supporting both graphics and present; when no
// such family exists it is nil and Graphics/Present hold the lowest index
// supporting each capability alone, when any.
type QueueFamilyPick struct {
	Combined *int
	Graphics *int
	Present  *int
}

// IsComplete reports whether a combined family was found.
func (p QueueFamilyPick) IsComplete() bool {
	return p.Combined != nil
}

// PickQueueFamily scans capabilities in index order. The scan stops at the
// first family supporting both graphics and present; otherwise it runs to the
// end recording the lowest graphics-capable and lowest present-capable
// indices separately, so a topology failure can name them.
func PickQueueFamily(caps []QueueFamilyCaps) QueueFamilyPick {
	pick := QueueFamilyPick{}

	for idx, family := range caps {
		if family.Graphics && family.Present {
			combined := idx
			pick.Combined = &combined
			break
		}
		if family.Graphics && pick.Graphics == nil {
			graphics := idx
			pick.Graphics = &graphics
		}
		if family.Present && pick.Present == nil {
			present := idx
			pick.Present = &present
		}
	}

	return pick
}

// queryQueueFamilyCaps resolves each family's graphics flag and presentation
// support against the given surface.
func queryQueueFamilyCaps(device core1_0.PhysicalDevice, surface khr_surface.Surface) ([]QueueFamilyCaps, error) {
	families := device.QueueFamilyProperties()

	caps := make([]QueueFamilyCaps, len(families))
	for idx, family := range families {
		supported, _, err := surface.PhysicalDeviceSurfaceSupport(device, idx)
		if err != nil {
			return nil, err
		}

		caps[idx] = QueueFamilyCaps{
			Graphics: family.QueueFlags&core1_0.QueueGraphics != 0,
			Present:  supported,
		}
	}

	return caps, nil
}

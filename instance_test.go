package vkboot

import (
	"testing"
)

func hasAny(available ...string) func(string) bool {
	set := make(map[string]struct{}, len(available))
	for _, name := range available {
		set[name] = struct{}{}
	}
	return func(name string) bool {
		_, ok := set[name]
		return ok
	}
}

func TestMissingNamesCollectsAll(t *testing.T) {
	missing := missingNames(
		[]string{"VK_KHR_surface", "VK_KHR_xlib_surface", "VK_EXT_debug_utils"},
		hasAny("VK_KHR_xlib_surface"),
	)

	if len(missing) != 2 {
		t.Fatalf("missingNames = %v, expected two entries", missing)
	}
	// Order follows the request list, so failure reports read predictably.
	if missing[0] != "VK_KHR_surface" || missing[1] != "VK_EXT_debug_utils" {
		t.Errorf("missingNames = %v, wrong order", missing)
	}
}

func TestMissingNamesNoneMissing(t *testing.T) {
	missing := missingNames(
		[]string{"VK_KHR_surface"},
		hasAny("VK_KHR_surface", "VK_KHR_swapchain"),
	)
	if len(missing) != 0 {
		t.Errorf("missingNames = %v, expected none", missing)
	}
}

func TestMissingNamesEmptyRequest(t *testing.T) {
	if missing := missingNames(nil, hasAny()); len(missing) != 0 {
		t.Errorf("missingNames(nil) = %v, expected none", missing)
	}
}

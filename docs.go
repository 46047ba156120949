// Package vkboot bootstraps a Vulkan rendering context against a window: it
// creates an instance with validated layers and extensions, wires an optional
// debug-utils diagnostics sink, selects a physical device against a set of
// requirements, builds a logical device whose single queue family serves both
// graphics and presentation, and negotiates a swapchain with one image view
// per image.
//
// The capability-negotiation rules (device predicate, queue-family scan,
// image count, surface format, present mode, extent) are plain functions over
// snapshot data, so they can be exercised with synthetic capability lists and
// no GPU.
//
// Typical use:
//
//	window, err := sdl.CreateWindow("demo", sdl.WINDOWPOS_UNDEFINED,
//		sdl.WINDOWPOS_UNDEFINED, 800, 600, sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
//	...
//	ctx, err := vkboot.Bootstrap(vkboot.NewSDLWindow(window), vkboot.DefaultConfig("demo"))
//	if err != nil {
//		log.Fatalf("%+v", err)
//	}
//	defer ctx.Destroy()
//
// Every bootstrap failure is terminal and wraps one of the sentinel errors in
// this package, so callers can distinguish a machine with no Vulkan driver
// (ErrNoDeviceFound) from one whose hardware is merely insufficient
// (ErrNoSuitableDevice).
package vkboot

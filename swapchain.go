package vkboot

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
)

// SwapchainSupport is a snapshot of what the surface reports for one physical
// device. Capabilities are dynamic, so a fresh snapshot is taken immediately
// before every negotiation.
type SwapchainSupport struct {
	Capabilities *khr_surface.SurfaceCapabilities
	Formats      []khr_surface.SurfaceFormat
	PresentModes []khr_surface.PresentMode
}

func querySwapchainSupport(surface khr_surface.Surface, device core1_0.PhysicalDevice) (SwapchainSupport, error) {
	var support SwapchainSupport
	var err error

	support.Capabilities, _, err = surface.PhysicalDeviceSurfaceCapabilities(device)
	if err != nil {
		return support, err
	}

	support.Formats, _, err = surface.PhysicalDeviceSurfaceFormats(device)
	if err != nil {
		return support, err
	}

	support.PresentModes, _, err = surface.PhysicalDeviceSurfacePresentModes(device)
	return support, err
}

// SwapchainConfig is the negotiated swapchain configuration. The surface's
// current transform and an opaque composite alpha are applied at creation
// from the same capabilities snapshot.
type SwapchainConfig struct {
	ImageCount    int
	SurfaceFormat khr_surface.SurfaceFormat
	PresentMode   khr_surface.PresentMode
	Extent        core1_0.Extent2D
}

// NegotiateSwapchain derives a SwapchainConfig from a support snapshot and
// the window's drawable pixel size. Every decision is a plain function of its
// inputs, so the policy can be exercised with synthetic capability lists.
func NegotiateSwapchain(support SwapchainSupport, drawableWidth, drawableHeight int) SwapchainConfig {
	return SwapchainConfig{
		ImageCount:    chooseImageCount(support.Capabilities),
		SurfaceFormat: chooseSurfaceFormat(support.Formats),
		PresentMode:   choosePresentMode(support.PresentModes),
		Extent:        chooseExtent(support.Capabilities, drawableWidth, drawableHeight),
	}
}

// chooseImageCount targets max(3, surface minimum) so presentation is not
// stalled on the driver recycling a minimal double buffer, then clamps to the
// surface maximum when one is reported. A zero maximum means unbounded.
func chooseImageCount(capabilities *khr_surface.SurfaceCapabilities) int {
	count := capabilities.MinImageCount
	if count < 3 {
		count = 3
	}
	if capabilities.MaxImageCount > 0 && count > capabilities.MaxImageCount {
		count = capabilities.MaxImageCount
	}
	return count
}

// chooseSurfaceFormat prefers 8-bit BGRA with the non-linear sRGB color
// space; when the surface does not offer the pair it falls back to the first
// reported entry. An empty list yields the zero value; a real surface always
// reports at least one format.
func chooseSurfaceFormat(availableFormats []khr_surface.SurfaceFormat) khr_surface.SurfaceFormat {
	if len(availableFormats) == 0 {
		return khr_surface.SurfaceFormat{}
	}

	for _, format := range availableFormats {
		if format.Format == core1_0.FormatB8G8R8A8SRGB && format.ColorSpace == khr_surface.ColorSpaceSRGBNonlinear {
			return format
		}
	}

	return availableFormats[0]
}

// choosePresentMode prefers mailbox; FIFO is the fallback the API guarantees.
func choosePresentMode(availablePresentModes []khr_surface.PresentMode) khr_surface.PresentMode {
	for _, presentMode := range availablePresentModes {
		if presentMode == khr_surface.PresentModeMailbox {
			return presentMode
		}
	}

	return khr_surface.PresentModeFIFO
}

// chooseExtent uses the surface-reported extent whenever it is defined; -1 is
// the binding's rendering of the undefined-extent sentinel, in which case the
// drawable size is clamped componentwise into the surface bounds.
func chooseExtent(capabilities *khr_surface.SurfaceCapabilities, drawableWidth, drawableHeight int) core1_0.Extent2D {
	if capabilities.CurrentExtent.Width != -1 {
		return capabilities.CurrentExtent
	}

	width := drawableWidth
	height := drawableHeight

	if width < capabilities.MinImageExtent.Width {
		width = capabilities.MinImageExtent.Width
	}
	if width > capabilities.MaxImageExtent.Width {
		width = capabilities.MaxImageExtent.Width
	}
	if height < capabilities.MinImageExtent.Height {
		height = capabilities.MinImageExtent.Height
	}
	if height > capabilities.MaxImageExtent.Height {
		height = capabilities.MaxImageExtent.Height
	}

	return core1_0.Extent2D{Width: width, Height: height}
}

func (c *Context) createSwapchain() error {
	c.SwapchainExtension = khr_swapchain.CreateExtensionFromDevice(c.Device)

	support, err := querySwapchainSupport(c.Surface, c.PhysicalDevice)
	if err != nil {
		return err
	}

	width, height := c.window.DrawableSize()
	config := NegotiateSwapchain(support, width, height)

	swapchain, _, err := c.SwapchainExtension.CreateSwapchain(c.Device, nil, khr_swapchain.SwapchainCreateInfo{
		Surface: c.Surface,

		MinImageCount:    config.ImageCount,
		ImageFormat:      config.SurfaceFormat.Format,
		ImageColorSpace:  config.SurfaceFormat.ColorSpace,
		ImageExtent:      config.Extent,
		ImageArrayLayers: 1,
		ImageUsage:       core1_0.ImageUsageColorAttachment,

		// Graphics and present alias one queue family, so images never cross
		// queue-family boundaries.
		ImageSharingMode: core1_0.SharingModeExclusive,

		PreTransform:   support.Capabilities.CurrentTransform,
		CompositeAlpha: khr_surface.CompositeAlphaOpaque,
		PresentMode:    config.PresentMode,
		Clipped:        true,
	})
	if err != nil {
		return err
	}

	c.Swapchain = swapchain
	c.SwapchainConfig = config

	return nil
}

// createImageViews builds one 2D color view per swapchain image. The images
// themselves belong to the swapchain and are never destroyed individually.
func (c *Context) createImageViews() error {
	images, _, err := c.Swapchain.SwapchainImages()
	if err != nil {
		return err
	}
	c.SwapchainImages = images

	var views []core1_0.ImageView
	for _, image := range images {
		view, _, err := c.Device.CreateImageView(nil, core1_0.ImageViewCreateInfo{
			Image:    image,
			ViewType: core1_0.ImageViewType2D,
			Format:   c.SwapchainConfig.SurfaceFormat.Format,
			SubresourceRange: core1_0.ImageSubresourceRange{
				AspectMask:     core1_0.ImageAspectColor,
				BaseMipLevel:   0,
				LevelCount:     1,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
		})
		if err != nil {
			return err
		}

		views = append(views, view)
	}
	c.SwapchainImageViews = views

	return nil
}

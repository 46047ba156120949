package vkboot

import (
	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v2"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v2"
)

// Window is the windowing-system collaborator. It supplies the Vulkan loader
// entry point, the instance extensions presentation needs on the current
// platform, surface creation, and the drawable pixel size. The caller keeps
// ownership of the native window; Context.Destroy never touches it.
type Window interface {
	NewLoader() (core.Loader, error)
	InstanceExtensions() []string
	CreateSurface(instance core1_0.Instance) (khr_surface.Surface, error)
	DrawableSize() (width, height int)
}

// SDLWindow adapts an *sdl.Window created with sdl.WINDOW_VULKAN.
type SDLWindow struct {
	window *sdl.Window
}

func NewSDLWindow(window *sdl.Window) *SDLWindow {
	return &SDLWindow{window: window}
}

func (w *SDLWindow) NewLoader() (core.Loader, error) {
	return core.CreateLoaderFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
}

func (w *SDLWindow) InstanceExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

func (w *SDLWindow) CreateSurface(instance core1_0.Instance) (khr_surface.Surface, error) {
	surfaceLoader := khr_surface.CreateExtensionFromInstance(instance)
	return vkng_sdl2.CreateSurface(instance, surfaceLoader, w.window)
}

func (w *SDLWindow) DrawableSize() (width, height int) {
	drawableWidth, drawableHeight := w.window.VulkanGetDrawableSize()
	return int(drawableWidth), int(drawableHeight)
}

func (c *Context) createSurface() error {
	surface, err := c.window.CreateSurface(c.Instance)
	if err != nil {
		return errors.Mark(err, ErrSurfaceCreationFailed)
	}
	c.Surface = surface

	return nil
}

package vkboot

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v2"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
)

// Context owns the full bootstrap chain, instance through image views. Child
// handles are valid only while their parents are, so teardown runs in
// reverse acquisition order and lives in one place, Destroy.
type Context struct {
	Loader core.Loader

	Instance       core1_0.Instance
	DebugMessenger ext_debug_utils.DebugUtilsMessenger
	Surface        khr_surface.Surface

	PhysicalDevice   core1_0.PhysicalDevice
	Profile          *DeviceProfile
	QueueFamilyIndex int

	Device        core1_0.Device
	GraphicsQueue core1_0.Queue
	PresentQueue  core1_0.Queue

	SwapchainExtension  khr_swapchain.Extension
	Swapchain           khr_swapchain.Swapchain
	SwapchainConfig     SwapchainConfig
	SwapchainImages     []core1_0.Image
	SwapchainImageViews []core1_0.ImageView

	window Window
	config Config
	log    logrus.FieldLogger
}

// Bootstrap runs the initialization sequence against the window: instance,
// diagnostics, surface, physical device, logical device, swapchain, image
// views. Each stage's output is a hard precondition of the next. The first
// failure is terminal: already-created resources are unwound before the
// error returns. Negotiation failures wrap one of the package sentinels;
// errors from the driver calls themselves propagate as returned.
func Bootstrap(window Window, config Config) (*Context, error) {
	if config.Log == nil {
		config.Log = logrus.StandardLogger()
	}

	c := &Context{
		window: window,
		config: config,
		log:    config.Log,
	}

	loader, err := window.NewLoader()
	if err != nil {
		return nil, err
	}
	c.Loader = loader

	if err := c.runStages(); err != nil {
		c.Destroy()
		return nil, err
	}

	return c, nil
}

func (c *Context) runStages() error {
	err := c.createInstance()
	if err != nil {
		return err
	}
	c.log.Debug("instance created")

	err = c.setupDiagnostics()
	if err != nil {
		return err
	}

	err = c.createSurface()
	if err != nil {
		return err
	}

	err = c.pickPhysicalDevice()
	if err != nil {
		return err
	}
	c.log.WithField("device", c.Profile.Name).Info("physical device selected")

	err = c.createLogicalDevice()
	if err != nil {
		return err
	}
	c.log.WithField("queueFamily", c.QueueFamilyIndex).Debug("logical device created")

	err = c.createSwapchain()
	if err != nil {
		return err
	}
	c.log.WithFields(logrus.Fields{
		"images":      c.SwapchainConfig.ImageCount,
		"format":      c.SwapchainConfig.SurfaceFormat.Format,
		"presentMode": c.SwapchainConfig.PresentMode,
		"extent":      fmt.Sprintf("%dx%d", c.SwapchainConfig.Extent.Width, c.SwapchainConfig.Extent.Height),
	}).Info("swapchain negotiated")

	return c.createImageViews()
}

// Destroy releases everything the bootstrap created, children before
// parents. It is safe on a partially built context and may be called more
// than once. The native window belongs to the caller and is left alone.
func (c *Context) Destroy() {
	for _, view := range c.SwapchainImageViews {
		view.Destroy(nil)
	}
	c.SwapchainImageViews = nil
	c.SwapchainImages = nil

	if c.Swapchain != nil {
		c.Swapchain.Destroy(nil)
		c.Swapchain = nil
	}

	if c.Device != nil {
		c.Device.Destroy(nil)
		c.Device = nil
	}

	if c.DebugMessenger != nil {
		c.DebugMessenger.Destroy(nil)
		c.DebugMessenger = nil
	}

	if c.Surface != nil {
		c.Surface.Destroy(nil)
		c.Surface = nil
	}

	if c.Instance != nil {
		c.Instance.Destroy(nil)
		c.Instance = nil
	}
}

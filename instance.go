package vkboot

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v2/khr_portability_enumeration"
)

// missingNames returns the entries of want rejected by has, preserving order.
func missingNames(want []string, has func(name string) bool) []string {
	var missing []string
	for _, name := range want {
		if !has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// createInstance validates every required layer and extension against what
// the runtime reports, then creates the instance bound to exactly that set.
// All missing names are collected so one failure reports the full shortfall.
func (c *Context) createInstance() error {
	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:    c.config.AppName,
		ApplicationVersion: c.config.AppVersion,
		EngineName:         c.config.EngineName,
		EngineVersion:      c.config.EngineVersion,
		APIVersion:         c.config.APIVersion,
	}

	extensions, _, err := c.Loader.AvailableExtensions()
	if err != nil {
		return err
	}
	hasExtension := func(name string) bool {
		_, ok := extensions[name]
		return ok
	}

	requiredExtensions := append([]string{}, c.window.InstanceExtensions()...)
	requiredExtensions = append(requiredExtensions, c.config.InstanceExtensions...)
	if c.config.Validation {
		requiredExtensions = append(requiredExtensions, ext_debug_utils.ExtensionName)
	}

	if missing := missingNames(requiredExtensions, hasExtension); len(missing) > 0 {
		return errors.Wrapf(ErrMissingCapability, "instance extensions not supported: %s", strings.Join(missing, ", "))
	}
	instanceOptions.EnabledExtensionNames = requiredExtensions

	// Portability-class drivers (MoltenVK) only enumerate when asked to.
	if hasExtension(khr_portability_enumeration.ExtensionName) {
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
		instanceOptions.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	layers, _, err := c.Loader.AvailableLayers()
	if err != nil {
		return err
	}

	requiredLayers := append([]string{}, c.config.Layers...)
	if c.config.Validation {
		requiredLayers = append(requiredLayers, validationLayerName)
	}

	missingLayers := missingNames(requiredLayers, func(name string) bool {
		_, ok := layers[name]
		return ok
	})
	if len(missingLayers) > 0 {
		return errors.Wrapf(ErrMissingCapability, "instance layers not supported: %s (validation needs the LunarG Vulkan SDK)", strings.Join(missingLayers, ", "))
	}
	instanceOptions.EnabledLayerNames = requiredLayers

	if c.config.Validation {
		// Chain the messenger options so instance creation itself is covered.
		instanceOptions.Next = c.debugMessengerOptions()
	}

	instance, _, err := c.Loader.CreateInstance(nil, instanceOptions)
	if err != nil {
		return err
	}
	c.Instance = instance

	return nil
}

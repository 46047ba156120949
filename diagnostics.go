package vkboot

import (
	"github.com/vkngwrapper/extensions/v2/ext_debug_utils"
)

func (c *Context) debugMessengerOptions() ext_debug_utils.DebugUtilsMessengerCreateInfo {
	severities := ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning
	if c.config.VerboseDiagnostics {
		severities |= ext_debug_utils.SeverityInfo | ext_debug_utils.SeverityVerbose
	}

	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: severities,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    c.logDebug,
	}
}

// setupDiagnostics registers the debug messenger. Only active when validation
// is enabled.
func (c *Context) setupDiagnostics() error {
	if !c.config.Validation {
		return nil
	}

	var err error
	debugLoader := ext_debug_utils.CreateExtensionFromInstance(c.Instance)
	c.DebugMessenger, _, err = debugLoader.CreateDebugUtilsMessenger(c.Instance, nil, c.debugMessengerOptions())
	if err != nil {
		return err
	}

	return nil
}

// logDebug routes messenger output into the configured logger. Warnings and
// errors surface at their own levels; everything else drops to debug, which
// the default logger suppresses. The return value tells the runtime to carry
// on regardless of message content.
func (c *Context) logDebug(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	entry := c.log.WithField("type", msgType)

	switch {
	case severity&ext_debug_utils.SeverityError != 0:
		entry.Error(data.Message)
	case severity&ext_debug_utils.SeverityWarning != 0:
		entry.Warn(data.Message)
	default:
		entry.Debug(data.Message)
	}

	return false
}

// Package devices defines the lifecycle shared by the machine's components.
package devices

import (
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
)

// Device represents a machine component with resettable state.
type Device interface {
	// ID yields the identifier for the device.
	ID() ID

	// Startup resets the device to its power-on state.
	Startup() error

	// Shutdown cleans up internal resources.
	Shutdown() error
}

// Map contains a list of registered devices.
type Map []Device

// Connect adds the given device to the device map.
// Returns false if the device type is already present in the set.
func (dm *Map) Connect(dev Device) bool {
	if (*dm).Find(dev.ID()) > -1 {
		return false
	}

	*dm = append(*dm, dev)
	return true
}

// Startup initializes all devices in connection order.
// Failures are collected and returned as an ErrorSet.
func (dm Map) Startup(logger *log.Logger) error {
	var errorset ErrorSet

	for _, dev := range dm {
		logger.Debug("device startup", log.String("id", dev.ID().String()))
		if err := dev.Startup(); err != nil {
			errorset.Append(errors.Wrapf(err, "%s", dev.ID()))
		}
	}

	if errorset.Len() == 0 {
		return nil
	}

	return errorset
}

// Shutdown cleans up internal resources of all devices.
func (dm Map) Shutdown(logger *log.Logger) error {
	var errorset ErrorSet

	for _, dev := range dm {
		logger.Debug("device shutdown", log.String("id", dev.ID().String()))
		if err := dev.Shutdown(); err != nil {
			errorset.Append(errors.Wrapf(err, "%s", dev.ID()))
		}
	}

	if errorset.Len() == 0 {
		return nil
	}

	return errorset
}

// Find returns the index for the device with the given id.
// Returns -1 if it can't be found.
func (dm Map) Find(id ID) int {
	for i, dev := range dm {
		if dev.ID() == id {
			return i
		}
	}
	return -1
}

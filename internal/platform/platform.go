// Package platform classifies the host as one of the two deployments this
// tool runs on and maps it to the wireless interface wired into that image.
package platform

import (
	"fmt"
	"os"
	"strings"
)

// Platform identifies a supported host variant.
type Platform int

const (
	Unknown Platform = iota
	RaspberryPi
	Ubuntu
)

func (p Platform) String() string {
	switch p {
	case RaspberryPi:
		return "Raspberry Pi"
	case Ubuntu:
		return "Ubuntu"
	}
	return "unknown"
}

// Interface returns the wireless interface name for the platform. The Pi
// images use a USB adapter on wlan1 (wlan0 is the onboard radio); the Ubuntu
// boxes expose the adapter as wlan0.
func (p Platform) Interface() string {
	switch p {
	case RaspberryPi:
		return "wlan1"
	case Ubuntu:
		return "wlan0"
	}
	return ""
}

const (
	deviceModelPath = "/proc/device-tree/model"
	osReleasePath   = "/etc/os-release"
)

// Classify determines the platform from the device-model and os-release
// descriptor contents. Pure so it can be tested without touching /proc or
// /etc; either descriptor may be empty.
func Classify(deviceModel, osRelease string) (Platform, error) {
	release := strings.ToLower(osRelease)

	switch {
	case strings.Contains(deviceModel, "Raspberry Pi") || strings.Contains(release, "raspi"):
		return RaspberryPi, nil
	case strings.Contains(release, "ubuntu"):
		return Ubuntu, nil
	}

	return Unknown, fmt.Errorf("unrecognized platform (model %q, os-release %q)",
		strings.TrimSpace(deviceModel), firstLine(osRelease))
}

// Detect reads the host descriptors and classifies the platform. A missing or
// unreadable descriptor is treated as empty, not as an error.
func Detect() (Platform, error) {
	model, _ := os.ReadFile(deviceModelPath)
	release, _ := os.ReadFile(osReleasePath)
	return Classify(string(model), string(release))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

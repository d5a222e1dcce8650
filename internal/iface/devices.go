package iface

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
)

// Device describes a wireless interface found on the system.
type Device struct {
	Name      string
	PHY       string
	Driver    string
	MAC       net.HardwareAddr
	Mode      string // managed, monitor
	IsMonitor bool
}

// List finds all wireless interfaces by walking /sys/class/net.
func List() ([]Device, error) {
	entries, err := os.ReadDir("/sys/class/net")
	if err != nil {
		return nil, fmt.Errorf("read /sys/class/net: %w", err)
	}

	var devices []Device
	for _, entry := range entries {
		name := entry.Name()
		wirelessPath := filepath.Join("/sys/class/net", name, "wireless")
		if _, err := os.Stat(wirelessPath); os.IsNotExist(err) {
			phyPath := filepath.Join("/sys/class/net", name, "phy80211")
			if _, err := os.Stat(phyPath); os.IsNotExist(err) {
				continue
			}
		}

		dev := Device{Name: name, Mode: "managed"}

		if macBytes, err := os.ReadFile(filepath.Join("/sys/class/net", name, "address")); err == nil {
			if mac, err := net.ParseMAC(strings.TrimSpace(string(macBytes))); err == nil {
				dev.MAC = mac
			}
		}

		if phyLink, err := os.Readlink(filepath.Join("/sys/class/net", name, "phy80211")); err == nil {
			dev.PHY = filepath.Base(phyLink)
		}

		if driverLink, err := os.Readlink(filepath.Join("/sys/class/net", name, "device", "driver")); err == nil {
			dev.Driver = filepath.Base(driverLink)
		}

		// ARPHRD_IEEE80211_RADIOTAP
		if typeBytes, err := os.ReadFile(filepath.Join("/sys/class/net", name, "type")); err == nil {
			if strings.TrimSpace(string(typeBytes)) == "803" {
				dev.IsMonitor = true
				dev.Mode = "monitor"
			}
		}

		devices = append(devices, dev)
	}

	return devices, nil
}

// Exists reports whether an interface with the given name is present.
func Exists(name string) bool {
	_, err := os.Stat(filepath.Join("/sys/class/net", name))
	return err == nil
}

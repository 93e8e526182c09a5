package distro

import (
	"github.com/frostyard/archey-install/internal/log"
	"github.com/godbus/dbus/v5"
)

const (
	hostnamedBusName = "org.freedesktop.hostname1"
	hostnamedPath    = "/org/freedesktop/hostname1"
	hostnamedPretty  = "org.freedesktop.hostname1.OperatingSystemPrettyName"
)

// propertyGetter is the part of dbus.BusObject used to read hostnamed.
type propertyGetter interface {
	GetProperty(p string) (dbus.Variant, error)
}

// HostnamedPrettyName asks systemd-hostnamed on the system bus for the
// operating system's pretty name. It returns "" when the bus or the service
// is unavailable.
func HostnamedPrettyName() string {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		log.Debug("system bus unavailable", "err", err)
		return ""
	}
	defer func() { _ = conn.Close() }()

	return prettyNameFrom(conn.Object(hostnamedBusName, dbus.ObjectPath(hostnamedPath)))
}

func prettyNameFrom(obj propertyGetter) string {
	v, err := obj.GetProperty(hostnamedPretty)
	if err != nil {
		log.Debug("hostnamed query failed", "err", err)
		return ""
	}
	name, ok := v.Value().(string)
	if !ok {
		log.Debug("unexpected hostnamed property type", "signature", v.Signature().String())
		return ""
	}
	return name
}

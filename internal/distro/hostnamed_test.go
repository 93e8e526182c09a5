package distro

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
)

type fakeHostnamed struct {
	value     dbus.Variant
	err       error
	requested string
}

func (f *fakeHostnamed) GetProperty(p string) (dbus.Variant, error) {
	f.requested = p
	return f.value, f.err
}

func TestPrettyNameFrom(t *testing.T) {
	tests := []struct {
		name string
		obj  *fakeHostnamed
		want string
	}{
		{"string property", &fakeHostnamed{value: dbus.MakeVariant("Fedora Linux 40 (Workstation Edition)")}, "Fedora Linux 40 (Workstation Edition)"},
		{"call error", &fakeHostnamed{err: errors.New("org.freedesktop.DBus.Error.ServiceUnknown")}, ""},
		{"wrong type", &fakeHostnamed{value: dbus.MakeVariant(uint32(7))}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, prettyNameFrom(tt.obj))
			assert.Equal(t, "org.freedesktop.hostname1.OperatingSystemPrettyName", tt.obj.requested)
		})
	}
}

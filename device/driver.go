package device

import (
	"io"
	"strconv"

	"simplefb/kernel"
)

// Driver is an interface implemented by all drivers.
type Driver interface {
	// DriverName returns the name of the driver.
	DriverName() string

	// DriverVersion returns the driver version.
	DriverVersion() (major uint16, minor uint16, patch uint16)

	// DriverInit initializes the device driver. If the driver init code
	// needs to log some output, it can use the supplied io.Writer.
	DriverInit(io.Writer) *kernel.Error
}

// Describe returns a "name(major.minor.patch)" label for drv.
func Describe(drv Driver) string {
	major, minor, patch := drv.DriverVersion()

	buf := make([]byte, 0, 32)
	buf = append(buf, drv.DriverName()...)
	buf = append(buf, '(')
	buf = strconv.AppendUint(buf, uint64(major), 10)
	buf = append(buf, '.')
	buf = strconv.AppendUint(buf, uint64(minor), 10)
	buf = append(buf, '.')
	buf = strconv.AppendUint(buf, uint64(patch), 10)
	buf = append(buf, ')')

	return string(buf)
}

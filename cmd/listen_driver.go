//go:build cgo

package cmd

// The rtmidi driver is a cgo wrapper around the C rtmidi library, so its
// registration can only be compiled into cgo-enabled builds.
import (
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

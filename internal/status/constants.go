// internal/status/constants.go
package status

// Link Status Block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of register slots per bridge.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the serial link health state.
const SlotHealthCode = 0

// SlotLastErrorCode holds the last link error code.
const SlotLastErrorCode = 1

// SlotSecondsInError holds the duration (in seconds) the link has been unhealthy.
const SlotSecondsInError = 2

// SlotFramesSentHi and SlotFramesSentLo hold the frames-sent counter,
// high word first.
const (
	SlotFramesSentHi = 3
	SlotFramesSentLo = 4
)

// ---- RESERVED RANGE ----

// Slots 5-10 are reserved for future use.
const SlotReservedStart = 5
const SlotReservedEnd = 10

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
// Device name is always placed at the END of the status block.
const SlotDeviceNameStart = 11

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last slot used for the device name (inclusive).
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for device name.
const DeviceNameMaxChars = 16

// MaxSecondsInError is where the seconds counter saturates.
const MaxSecondsInError = 65535

// ---- HEALTH CODES ----

// HealthUnknown represents the boot state, before the first frame.
const HealthUnknown uint16 = 0

// HealthOK represents a link that accepted the last frame.
const HealthOK uint16 = 1

// HealthError represents a link that rejected the last frame or never opened.
const HealthError uint16 = 2

// HealthStale represents a bridge whose contact source failed its last poll.
const HealthStale uint16 = 3

// HealthDisabled represents a bridge running without a serial link.
const HealthDisabled uint16 = 4

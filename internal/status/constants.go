// internal/status/constants.go
package status

// ---- HEALTH CODES ----

// HealthUnknown represents a group that has not been polled yet.
const HealthUnknown uint16 = 0

// HealthOK represents a group whose last cycle succeeded.
const HealthOK uint16 = 1

// HealthError represents a group whose last cycle failed.
const HealthError uint16 = 2

// ---- ERROR CODES ----

// CodeReadFailed is a transport failure, timeout or empty response.
const CodeReadFailed uint16 = 1

// CodeMalformed is a response that does not fit the register layout.
const CodeMalformed uint16 = 2

// CodeSchemaMismatch is register map drift.
const CodeSchemaMismatch uint16 = 3

// CodeSessionState is a cycle attempted outside the Ready state.
const CodeSessionState uint16 = 4

// CodeException is OR-ed with a Modbus exception code.
const CodeException uint16 = 0x100

// MaxSecondsInError caps the error duration counter.
const MaxSecondsInError = 65535

// Package units provides unit-tagged lengths and checked addition over them.
//
// Millimeters and Meters are distinct named types over uint32, so the compiler
// keeps the two apart. Addition always yields Millimeters and never wraps:
// any result outside the uint32 range is reported as ErrOverflow.
package units

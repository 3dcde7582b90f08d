// Package monitor renders a live, read-only view of a device's
// absolute axes in the terminal. Each axis is drawn as a bar within
// its driver-reported range, next to the raw sample value and the
// bounds observed during the session. The view exists to sanity-check
// a calibration: after applying a mapping, a full stick sweep should
// drive each bar across its whole width.
package monitor

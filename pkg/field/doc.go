// Package field generates the random color field consumed by the LED driver
// firmware.
package field

// The field is a WIDTH x HEIGHT grid of colors. Each cell receives exactly
// one value from an evenly spaced set over [0, 1), placed at random, and the
// value is mapped onto a three segment hue ramp (blue -> red -> green -> blue).
// Because every value is used exactly once, the aggregate channel sums stay
// close to each other regardless of placement.
//
// The first cell is pinned to the value nearest one sixth of the ramp so the
// firmware always starts from the same hue.

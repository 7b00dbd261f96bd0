// Package classify maps file extensions to the fixed set of organization
// categories. Classification is a pure function of the extension (plus the
// executable bit); unknown inputs land in Other rather than producing an
// error.
package classify

// Package analysis provides spectral summaries of trajectory columns.
//
//   - [PowerSpectrum]: magnitude spectrum of a detrended signal
//   - [DominantPeriod]: strongest oscillation period in samples
package analysis

// Package spectrum computes one-sided spectra of real-valued waveforms and
// provides magnitude/power extraction helpers.
//
// Forward transforms use the full waveform length, so bin k of an n-sample
// signal corresponds to k*sampleRate/n Hz with no zero padding.
package spectrum

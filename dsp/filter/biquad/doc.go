// Package biquad implements second-order IIR filter sections and cascades.
//
// Sections use the Direct Form II Transposed topology. Higher-order filters
// (the Butterworth band-pass used for waveform conditioning) are built as a
// Chain of sections processed in series.
package biquad

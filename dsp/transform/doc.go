// Package transform computes forward spectra of real single-precision sample
// buffers.
//
// The FFT itself is delegated to algo-fft. This package embeds real samples as
// zero-imaginary complex values, validates the length and manages plan reuse.
// Results are unnormalized: a full-scale sinusoid of amplitude A at bin k
// yields |X[k]| = A*N/2.
//
// Only power-of-two lengths of at least 2 are accepted. Other lengths are
// rejected with [ErrInvalidLength] before any work is done; nothing is padded
// or truncated.
package transform

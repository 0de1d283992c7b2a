// Package phasor wraps the native time-domain phasor kernels: the real (G)
// and imaginary (S) components of a 1-dimensional decay curve, computed as
// normalized cosine and sine Fourier transforms.
package phasor

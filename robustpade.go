/*
Package robustpade computes Padé approximants of truncated Taylor series with the SVD-based
robust algorithm of Gonnet, Güttel and Trefethen, which reduces the degrees of the approximant
to the numerical rank of the underlying Toeplitz system instead of producing spurious
pole-zero pairs.

The approximation itself lives in the pade package, the extraction of Taylor coefficients
from lists, polynomials and functions in the taylor package, and the robustpade command in
cmd/robustpade.
*/
package robustpade

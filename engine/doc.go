// Package engine implements the decimal register machine of the RPN calculator.
//
// The engine holds a four register stack (x, y, z, t), the last-x register (x0)
// and four memory cells (m0-m3). All values are decimals of bounded precision
// and exponent, rounded half-up, computed in an apd.Context owned by each
// Engine and configured from an immutable Config.
//
// Operations either apply completely or return an error and leave the
// registers unchanged. The exception is SetX, which clears x on a bad entry.
package engine

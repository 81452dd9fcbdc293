// Package bootstrap implements John T. Lowry's "Bootstrap Approach" to
// light-aircraft performance modeling (Lowry 1995; Lowry, Performance of
// Light Aircraft, 1999). Given a small set of airframe/propeller constants
// and two steady-flight observations (a best-glide and a best-angle-climb
// test), it derives a compact data plate of bootstrap coefficients and uses
// it to evaluate thrust, drag, power, rate of climb, flight-path angle, and
// the characteristic V-speeds at any weight, density altitude, and airspeed.
//
// The package is a pure computation library: every exported function is a
// total function of its arguments, there is no shared mutable state, and
// every type is safe to use concurrently from any number of goroutines.
package bootstrap

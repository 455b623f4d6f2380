// Package rides models a small ride-sharing domain: ride variants
// priced polymorphically behind one interface, and drivers and
// riders who hold the same ride through reference-counted handles,
// so one completed ride backs both the driver's earnings and the
// rider's history.
package rides

// Package generation defines the boundary between the application core and
// external text-generation services. Callers depend on the Generator
// interface; concrete backends live under internal/platform.
package generation

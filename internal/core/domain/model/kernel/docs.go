// Package kernel holds the value objects shared by every route tracking aggregate:
//   - UUID: identifier wrapper that rejects the nil UUID
//   - GeoPoint: validated latitude/longitude pair
//   - Date helpers for plan calendar days
//
// Values are immutable and safe for concurrent use. Zero values fail Validate,
// so callers must go through the constructors.
package kernel

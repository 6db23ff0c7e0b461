// Package sanitizer provides input normalization for booking data.
//
// All normalization functions are idempotent - applying them multiple times
// produces the same result. Functions handle invalid input gracefully,
// typically by returning empty strings or empty slices rather than errors.
//
// Normalization includes:
//   - Phone numbers: convert to E.164 format (+[country][number])
//   - Strings: collapse internal whitespace, trim leading/trailing spaces
//   - Image URLs: enforce HTTPS, lowercase domains, preserve paths
//   - Slices: remove duplicates and empty values after normalization
//   - Numbers: clamp to valid ranges
package sanitizer

// Package kernel contains the shared value objects of the KandyPack domain
// model: entity identifiers (UUID) and space units (Space).
//
// Value objects in this package are immutable, validated on construction, and
// safe for concurrent use. The zero value of each type is invalid and must be
// created through the provided factory functions.
package kernel

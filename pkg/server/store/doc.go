// Package store defines the persistence interfaces consumed by the
// sharing core. Implementations live in the gorm subpackage; tests swap
// in mocks. Stores report storage failures as plain errors; business
// rule classification happens in the sharing package.
package store

// Package config loads and validates the Breeze service configuration.
//
// Configuration comes from a YAML file, with defaults applied for any
// omitted field and optional environment variable overrides in the
// BREEZE_SECTION_FIELD naming scheme (environment always wins over the
// file). Validation runs after defaults and again after overrides, so
// a bad override fails fast instead of surfacing at request time.
package config

// Package config resolves exporter configuration.
//
// Values come from, in increasing precedence: an optional YAML file (with ${VAR}
// interpolation), a .env file, and the process environment. Required values are the
// Bitvavo API key and secret and the Parqet holding ID; everything else has a default.
package config

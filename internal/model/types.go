// Package model defines shared data structures.
package model

// Config defines quiz settings resolved from flags, config file and preferences.
type Config struct {
	Table     int
	Questions string
	Seed      int64
	LogLevel  string
	LogFormat string
}

// Preferences are the settings remembered between runs.
type Preferences struct {
	Table     int
	Questions string
}

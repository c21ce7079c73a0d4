package config

// Re-exports for white-box tests.
var (
	AllNonEmpty  = allNonEmpty
	AllNumbers   = allNumbers
	GetEnvAsBool = getEnvAsBool
)

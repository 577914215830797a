package config

//go:generate go tool go-enum --marshal --names --nocase

// OutputOrder selects declaration output order.
// ENUM(source, natural)
type OutputOrder int

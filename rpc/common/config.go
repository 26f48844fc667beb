package common

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Client configuration struct
// --------------------------------------------------------------------------

// ClientConfig holds the parameters the default HTTP client builder uses.
// It only matters when no custom client builder is supplied.
type ClientConfig struct {
	// Idle connection timeout in seconds, also used as the keep-alive period
	TimeoutSecond int64

	// Connection pool limits
	MaxIdleConns        int
	MaxIdleConnsPerHost int

	// Logging configuration
	LogLevel string
}

// DefaultClientConfig returns the configuration used when the embedder
// does not override anything.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		TimeoutSecond:       90,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		LogLevel:            "info",
	}
}

// String returns a formatted string representation of the configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("HTTP Client")
	addField("Idle Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))
	addField("Max Idle Conns", strconv.Itoa(c.MaxIdleConns))
	addField("Max Idle Conns / Host", strconv.Itoa(c.MaxIdleConnsPerHost))

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}

package cli

import "fmt"

// DefaultSrc is the source directory used when only dest is given.
const DefaultSrc = "."

// Config holds the parsed command line of a statik invocation.
type Config struct {
	Recursive        bool
	BodyTemplatePath string
	LineTemplatePath string
	Paths            []string // [dest] or [src, dest]
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if n := len(c.Paths); n < 1 || n > 2 {
		return fmt.Errorf("wrong amount of arguments: got %d, want 1 or 2", n)
	}
	if c.Dest() == "" {
		return fmt.Errorf("empty destination")
	}
	if len(c.Paths) == 2 && c.Paths[0] == "" {
		return fmt.Errorf("empty source")
	}
	return nil
}

// Src returns the source directory, DefaultSrc when omitted.
func (c *Config) Src() string {
	if len(c.Paths) == 2 {
		return c.Paths[0]
	}
	return DefaultSrc
}

// Dest returns the destination directory: always the last positional argument.
func (c *Config) Dest() string {
	if len(c.Paths) == 0 {
		return ""
	}
	return c.Paths[len(c.Paths)-1]
}

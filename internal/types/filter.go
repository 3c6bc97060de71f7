package types

type (
	// FilterConfig contains the file selection settings read from a config file.
	FilterConfig struct {
		Extensions []string `yaml:"extensions" json:"extensions"`
		Exclude    []string `yaml:"exclude" json:"exclude"`
	}
)

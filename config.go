package bancogo

const (
	DefaultDataFile = "banco_dados.json"
	DefaultBranch   = "0001"
)

type Config struct {
	DataFile string `yaml:"data_file"`
	Branch   string `yaml:"branch"`
}

// Defaults fills unset fields with the program's built-in constants.
func (c *Config) Defaults() {
	if c.DataFile == "" {
		c.DataFile = DefaultDataFile
	}
	if c.Branch == "" {
		c.Branch = DefaultBranch
	}
}

// internal/config/config.go
package config

type Config struct {
	Serial SerialConfig `yaml:"serial"`
	Poll   PollConfig   `yaml:"poll"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// ---- SERIAL LINE ----

type SerialConfig struct {
	Port      string `yaml:"port"`
	BaudRate  int    `yaml:"baud_rate"`
	DataBits  int    `yaml:"data_bits"`
	Parity    string `yaml:"parity"`
	StopBits  int    `yaml:"stop_bits"`
	TimeoutMs int    `yaml:"timeout_ms"` // per frame
}

// ---- POLL ----

type PollConfig struct {
	Groups []GroupConfig `yaml:"groups"`
}

type GroupConfig struct {
	Name       string `yaml:"name"`
	IntervalMs int    `yaml:"interval_ms"`
}

// ---- OUTPUT ----

type OutputConfig struct {
	Path   string `yaml:"path"`   // empty = stdout
	Status *bool  `yaml:"status"` // health records; default on
}

// ---- LOG ----

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
}

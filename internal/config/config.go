package config

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

type Config struct {
	Env   string      `yaml:"env" env:"ENV" env-default:"prod"`
	Shell ShellConfig `yaml:"shell"`
}

type ShellConfig struct {
	Prompt       string `yaml:"prompt" env:"SHELL_PROMPT" env-default:"todo>"`
	DefaultOrder string `yaml:"default_order" env:"SHELL_DEFAULT_ORDER" env-default:"newest"`
	TimeFormat   string `yaml:"time_format" env:"SHELL_TIME_FORMAT" env-default:"2006-01-02 15:04:05"`
}

package config

// Config represents the complete configuration structure
type Config struct {
	Netatmo NetatmoConfig `mapstructure:"netatmo"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// NetatmoConfig holds the developer application credentials and tokens.
// Either the credential triple or a standalone access token must be set.
type NetatmoConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RefreshToken string `mapstructure:"refresh_token"`
	AccessToken  string `mapstructure:"access_token"`
}

// FilterConfig maps preset names to filter expressions
type FilterConfig map[string]string

// OutputConfig contains display settings
type OutputConfig struct {
	ShowDetails bool `mapstructure:"show_details"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

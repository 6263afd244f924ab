package config

type yamlConfig struct {
	Uniqr struct {
		Count      *bool `yaml:"count"`
		CountWidth *int  `yaml:"count_width"`

		Log struct {
			Debug *bool  `yaml:"debug"`
			File  string `yaml:"file"`
		} `yaml:"log"`
	} `yaml:"uniqr"`
}

package config

const (
	defaultSource         = "./data/samples.json"
	defaultAudioBase      = "./audio/"
	defaultTimeoutSeconds = 30
	defaultPageSize       = 20
	defaultField          = "all"
	defaultDebounceMillis = 300
	defaultBind           = "127.0.0.1:7490"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

var (
	defaultPageSizes = []int{10, 20, 50, 100}
	defaultFields    = []string{"all", "id", "final_caption", "asr", "final_caption_asr", "json"}
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Data: Data{
			Source:         defaultSource,
			AudioBase:      defaultAudioBase,
			CacheBust:      true,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Browse: Browse{
			PageSize:       defaultPageSize,
			PageSizes:      append([]int(nil), defaultPageSizes...),
			Fields:         append([]string(nil), defaultFields...),
			DefaultField:   defaultField,
			DebounceMillis: defaultDebounceMillis,
		},
		Server: Server{
			Bind: defaultBind,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

package models

// EnvConfig is the process-wide configuration resolved from the
// environment at startup.
type EnvConfig struct {
	BaseURL    string
	CDNURL     string
	Cookie     string
	CookieFile string
	DataDir    string
	UserAgent  string

	// CDN requests go over HTTP/3 when set; the API stays on TCP.
	HTTP3 bool

	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string

	LogLevel string
}

// ProfileConfig overrides parts of the environment configuration for a
// named account profile (profiles.yaml).
type ProfileConfig struct {
	Cookie     string `yaml:"cookie"`
	CookieFile string `yaml:"cookie_file"`
	BaseURL    string `yaml:"base_url"`
	CDNURL     string `yaml:"cdn_url"`
	DataDir    string `yaml:"data_dir"`
}

// Apply folds the profile's non-empty fields onto the env config.
func (p *ProfileConfig) Apply(cfg *EnvConfig) {
	if p.Cookie != "" {
		cfg.Cookie = p.Cookie
	}
	if p.CookieFile != "" {
		cfg.CookieFile = p.CookieFile
	}
	if p.BaseURL != "" {
		cfg.BaseURL = p.BaseURL
	}
	if p.CDNURL != "" {
		cfg.CDNURL = p.CDNURL
	}
	if p.DataDir != "" {
		cfg.DataDir = p.DataDir
	}
}

package config

import "os"

const (
	defaultContactEmail  = "suzhang@asbarcelona.com"
	defaultGitHubRepoURL = "https://github.com/sumyin/formula_booklet_website"
)

// Config holds process-wide site settings, resolved once at startup and
// read-only afterwards.
type Config struct {
	ContactEmail  string
	GitHubRepoURL string
}

// FromEnv builds a Config from the environment, falling back to the defaults
// for anything unset. Values from a .env file are visible here because the
// root command loads it before any subcommand runs.
func FromEnv() Config {
	return Config{
		ContactEmail:  getenv("CONTACT_EMAIL", defaultContactEmail),
		GitHubRepoURL: getenv("GITHUB_REPO_URL", defaultGitHubRepoURL),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

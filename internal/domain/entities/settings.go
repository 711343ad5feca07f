package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	SourceGitHub = "github"
	SourceGitLab = "gitlab"

	DefaultUserAgent = "versionsync"
	DefaultTimeout   = 30 * time.Second
)

var (
	// ErrInvalidSettings wraps every validation failure.
	ErrInvalidSettings = errors.New("invalid settings")

	// envVarPattern matches ${VAR_NAME} placeholders.
	envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)
)

// Settings is the top-level configuration for versionsync.
type Settings struct {
	Package   string         `yaml:"package"`
	Source    SourceSettings `yaml:"source"`
	Timeout   time.Duration  `yaml:"timeout"`
	Root      string         `yaml:"root"`
	Files     []string       `yaml:"files"`
	Changelog string         `yaml:"changelog"`
}

// SourceSettings describes where releases of the package are published.
type SourceSettings struct {
	Type       string `yaml:"type"`       // "github" or "gitlab"
	Repository string `yaml:"repository"` // "owner/name", GitLab groups may be nested
	Token      string `yaml:"token"`      // Inline, ${ENV_VAR}, or file path
	BaseURL    string `yaml:"base_url"`
	UserAgent  string `yaml:"user_agent"`
}

// ReleaseSourceOptions carries what a release repository needs to talk to its API.
type ReleaseSourceOptions struct {
	Token     string
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// NewSettings reads and parses the configuration file at path.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes YAML settings, applies defaults, resolves the source
// token and validates the result.
func ParseSettings(data []byte) (*Settings, error) {
	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	settings.applyDefaults()
	settings.Source.Token = resolveToken(settings.Source.Token)
	if settings.Source.Token == "" {
		settings.Source.Token = resolveTokenFromEnv(settings.Source.Type)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
func FindConfigFile() (string, error) {
	locations := []string{".", ".config", "configs"}
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	names := []string{
		".versionsync.yaml",
		".versionsync.yml",
		"versionsync.yaml",
		"versionsync.yml",
	}

	for _, location := range locations {
		for _, name := range names {
			candidate := filepath.Join(location, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Validate checks for required configuration values.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.Package) == "" {
		return fmt.Errorf("%w: package is required", ErrInvalidSettings)
	}
	if _, err := s.SourceRepository(); err != nil {
		return err
	}
	if len(s.Files) == 0 {
		return fmt.Errorf("%w: files must have at least one entry", ErrInvalidSettings)
	}
	for i, file := range s.Files {
		if strings.TrimSpace(file) == "" {
			return fmt.Errorf("%w: files[%d] is empty", ErrInvalidSettings, i)
		}
	}
	if s.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalidSettings)
	}
	return nil
}

// SourceRepository splits source.repository into owner (or group path) and name.
func (s *Settings) SourceRepository() (Repository, error) {
	raw := strings.Trim(strings.TrimSpace(s.Source.Repository), "/")
	idx := strings.LastIndex(raw, "/")
	if idx <= 0 || idx == len(raw)-1 {
		return Repository{}, fmt.Errorf(
			"%w: source.repository must look like owner/name, got %q",
			ErrInvalidSettings, s.Source.Repository,
		)
	}
	return Repository{
		ID:           raw,
		Organization: raw[:idx],
		Name:         raw[idx+1:],
		ProviderName: s.Source.Type,
	}, nil
}

// ReleaseSourceOptions returns the connection options of the release source.
func (s *Settings) ReleaseSourceOptions() ReleaseSourceOptions {
	return ReleaseSourceOptions{
		Token:     s.Source.Token,
		BaseURL:   s.Source.BaseURL,
		UserAgent: s.Source.UserAgent,
		Timeout:   s.Timeout,
	}
}

func (s *Settings) applyDefaults() {
	if s.Source.Type == "" {
		s.Source.Type = SourceGitHub
	}
	if s.Source.UserAgent == "" {
		s.Source.UserAgent = DefaultUserAgent
	}
	if s.Timeout == 0 {
		s.Timeout = DefaultTimeout
	}
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if info, err := os.Stat(resolved); err == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Debugf("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

func resolveTokenFromEnv(sourceType string) string {
	switch sourceType {
	case SourceGitHub:
		if t := os.Getenv("GITHUB_TOKEN"); t != "" {
			return t
		}
		return os.Getenv("GH_TOKEN")
	case SourceGitLab:
		if t := os.Getenv("GITLAB_TOKEN"); t != "" {
			return t
		}
		return os.Getenv("GL_TOKEN")
	default:
		return ""
	}
}

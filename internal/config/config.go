// Package config loads sampling profiles: which generator to build, with
// which constraints, and how many values to draw.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Generator kinds understood by Profile.Generator.
const (
	KindSubdomain = "subdomain"
	KindDomain    = "domain"
	KindAnyDomain = "any-domain"
	KindUserInfo  = "user-info"
	KindIPv4      = "ipv4"
	KindIPv6      = "ipv6"
	KindAuthority = "authority"
	KindSegment   = "segment"
	KindQuery     = "query"
	KindFragment  = "fragment"
	KindURL       = "url"
	KindEmail     = "email"
)

// Kinds lists every supported generator kind.
var Kinds = []string{
	KindSubdomain, KindDomain, KindAnyDomain, KindUserInfo, KindIPv4, KindIPv6,
	KindAuthority, KindSegment, KindQuery, KindFragment, KindURL, KindEmail,
}

// DefaultEnvPrefix is the prefix of environment overrides, eg. NETGEN_COUNT
// or NETGEN_AUTHORITY_WITH_IPV4.
const DefaultEnvPrefix = "NETGEN"

// Profile describes one sampling run.
type Profile struct {
	Kind      string `mapstructure:"kind" yaml:"kind" validate:"required,oneof=subdomain domain any-domain user-info ipv4 ipv6 authority segment query fragment url email"`
	Count     int    `mapstructure:"count" yaml:"count" validate:"min=0"`
	Seed      int    `mapstructure:"seed" yaml:"seed"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format" validate:"required,oneof=json text"`

	Domain    DomainSettings    `mapstructure:"domain" yaml:"domain"`
	Authority AuthoritySettings `mapstructure:"authority" yaml:"authority"`
	URL       URLSettings       `mapstructure:"url" yaml:"url"`
	Email     EmailSettings     `mapstructure:"email" yaml:"email"`
}

// DomainSettings fixes the first or last label of generated domains.
// Empty strings leave the label free.
type DomainSettings struct {
	Prefix string `mapstructure:"prefix" yaml:"prefix"`
	Suffix string `mapstructure:"suffix" yaml:"suffix"`
}

// AuthoritySettings mirrors netgen.WebAuthorityConstraints. Domain, when
// set, is used verbatim as the only domain host.
type AuthoritySettings struct {
	Domain        string `mapstructure:"domain" yaml:"domain"`
	WithoutDomain bool   `mapstructure:"without_domain" yaml:"without_domain"`
	WithIPv4      bool   `mapstructure:"with_ipv4" yaml:"with_ipv4"`
	WithIPv6      bool   `mapstructure:"with_ipv6" yaml:"with_ipv6"`
	WithUserInfo  bool   `mapstructure:"with_user_info" yaml:"with_user_info"`
	WithPort      bool   `mapstructure:"with_port" yaml:"with_port"`
}

// URLSettings mirrors netgen.WebURLConstraints.
type URLSettings struct {
	ValidSchemes        []string          `mapstructure:"valid_schemes" yaml:"valid_schemes,omitempty"`
	Authority           AuthoritySettings `mapstructure:"authority" yaml:"authority"`
	WithQueryParameters bool              `mapstructure:"with_query_parameters" yaml:"with_query_parameters"`
	WithFragments       bool              `mapstructure:"with_fragments" yaml:"with_fragments"`
}

// EmailSettings mirrors netgen.EmailConstraints.
type EmailSettings struct {
	Domain string `mapstructure:"domain" yaml:"domain"`
}

var profileValidator = validator.New()

// Default returns the profile used when nothing else is configured.
func Default() *Profile {
	return &Profile{
		Kind:      KindURL,
		Count:     10,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads a profile with Read and validates it.
func Load(path string) (*Profile, error) {
	p, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Read builds a profile from defaults, then the optional YAML or JSON file
// at path, then environment variables with DefaultEnvPrefix. The result is
// not validated, so callers can apply further overrides first.
func Read(path string) (*Profile, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(DefaultEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var p Profile
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &p, nil
}

// setDefaults registers every key so that AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("kind", d.Kind)
	v.SetDefault("count", d.Count)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)

	v.SetDefault("domain.prefix", "")
	v.SetDefault("domain.suffix", "")

	for _, prefix := range []string{"authority", "url.authority"} {
		v.SetDefault(prefix+".domain", "")
		v.SetDefault(prefix+".without_domain", false)
		v.SetDefault(prefix+".with_ipv4", false)
		v.SetDefault(prefix+".with_ipv6", false)
		v.SetDefault(prefix+".with_user_info", false)
		v.SetDefault(prefix+".with_port", false)
	}
	v.SetDefault("url.with_query_parameters", false)
	v.SetDefault("url.with_fragments", false)

	v.SetDefault("email.domain", "")
}

// Validate checks the profile fields that do not depend on generator
// construction. Constraint errors surface from Generator.
func (p *Profile) Validate() error {
	if err := profileValidator.Struct(p); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidationError lists every invalid profile field.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s", strings.Join(e.Problems, "; "))
}

func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	problems := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		problems = append(problems, fmt.Sprintf("field '%s' failed validation: %s (value: %v)",
			fieldError.Field(), fieldError.Tag(), fieldError.Value()))
	}
	return &ValidationError{Problems: problems}
}

// WriteYAML writes the profile in the format Read accepts.
func (p *Profile) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return enc.Close()
}

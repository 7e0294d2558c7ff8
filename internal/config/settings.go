package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/xeipuuv/gojsonschema"

	"github.com/dharmasatrya/flightanalyst/pkg/currency"
)

//go:embed schema.json
var settingsSchema []byte

// ErrInvalid marks every failure to load the settings document.
var ErrInvalid = errors.New("invalid configuration")

type FlightSearchSettings struct {
	Engine          string   `mapstructure:"engine"`
	CurrencyOptions []string `mapstructure:"currency_options"`
}

type CompletionSettings struct {
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
}

type PresentationSettings struct {
	BackgroundImageURL string `mapstructure:"background_image_url"`
	HideFooter         bool   `mapstructure:"hide_footer"`
}

// Settings is the static settings document. It is read-only once loaded.
type Settings struct {
	FlightSearch FlightSearchSettings `mapstructure:"flight_search"`
	Completion   CompletionSettings   `mapstructure:"openai"`
	Presentation PresentationSettings `mapstructure:"custom_css"`
}

func (s *Settings) Currencies() currency.Set {
	return currency.NewSet(s.FlightSearch.CurrencyOptions)
}

// LoadSettings reads and validates the settings document at path. Leaf keys
// may be overridden from the environment, e.g. OPENAI_MODEL.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInvalid, path, err)
	}
	return ParseSettings(data)
}

func ParseSettings(data []byte) (*Settings, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func validateDocument(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(settingsSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
	}
	return nil
}

// validate re-checks fields after environment overrides were applied.
func (s *Settings) validate() error {
	s.FlightSearch.Engine = strings.TrimSpace(s.FlightSearch.Engine)
	s.Completion.Model = strings.TrimSpace(s.Completion.Model)

	if s.FlightSearch.Engine == "" {
		return fmt.Errorf("%w: flight_search.engine is empty", ErrInvalid)
	}
	if s.Completion.Model == "" {
		return fmt.Errorf("%w: openai.model is empty", ErrInvalid)
	}
	if s.Completion.Temperature < 0 || s.Completion.Temperature > 2 {
		return fmt.Errorf("%w: openai.temperature must be between 0 and 2", ErrInvalid)
	}

	set := s.Currencies()
	if set.Len() == 0 {
		return fmt.Errorf("%w: flight_search.currency_options is empty", ErrInvalid)
	}
	s.FlightSearch.CurrencyOptions = set.Codes()
	return nil
}

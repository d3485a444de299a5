// Package xconfig loads settings for programs that generate ULIDs.
//
// Values are resolved in order: `default` struct tags, YAML files, then
// environment variables named PREFIX_SECTION_FIELD. Missing files are skipped.
package xconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/vitalvas/ulid"
	"github.com/vitalvas/ulid/crockford"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidCase is returned when generator.case is neither "upper" nor "lower".
	ErrInvalidCase = errors.New("xconfig: case must be upper or lower")

	// ErrInvalidCount is returned when generator.count is not positive.
	ErrInvalidCount = errors.New("xconfig: count must be positive")
)

type Generator struct {
	Monotonic bool   `yaml:"monotonic" env:"MONOTONIC" default:"true"`
	Case      string `yaml:"case" env:"CASE" default:"lower"`
	Count     int    `yaml:"count" env:"COUNT" default:"1"`
}

type Log struct {
	Level     string `yaml:"level" env:"LEVEL" default:"info"`
	Type      string `yaml:"type" env:"TYPE" default:"text"`
	AddSource bool   `yaml:"add_source" env:"ADD_SOURCE"`
}

type Config struct {
	Generator Generator `yaml:"generator" env:"GENERATOR"`
	Log       Log       `yaml:"log" env:"LOG"`
}

// TextCase returns the configured output case.
func (g Generator) TextCase() (crockford.Case, error) {
	switch strings.ToLower(g.Case) {
	case "upper":
		return crockford.Upper, nil
	case "lower":
		return crockford.Lower, nil
	default:
		return crockford.Lower, fmt.Errorf("%w: %q", ErrInvalidCase, g.Case)
	}
}

// Options returns the generator options matching the configuration.
func (g Generator) Options() []ulid.Option {
	var opts []ulid.Option
	if g.Monotonic {
		opts = append(opts, ulid.WithMonotonic())
	}

	return opts
}

func (c Config) Validate() error {
	if _, err := c.Generator.TextCase(); err != nil {
		return err
	}

	if c.Generator.Count < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, c.Generator.Count)
	}

	return nil
}

type Options struct {
	files     []string
	envPrefix string
}

type Option func(*Options)

func WithFiles(filenames ...string) Option {
	return func(o *Options) {
		o.files = append(o.files, filenames...)
	}
}

func WithEnv(prefix string) Option {
	return func(o *Options) {
		o.envPrefix = prefix
	}
}

func Load(options ...Option) (Config, error) {
	opts := &Options{}
	for _, option := range options {
		option(opts)
	}

	var conf Config

	configValue := reflect.ValueOf(&conf).Elem()

	if err := applyDefaults(configValue); err != nil {
		return conf, fmt.Errorf("failed to apply default tags: %w", err)
	}

	for _, filename := range opts.files {
		if err := loadFromFile(&conf, filename); err != nil {
			return conf, fmt.Errorf("failed to load %s: %w", filename, err)
		}
	}

	if opts.envPrefix != "" {
		if err := loadFromEnv(configValue, strings.ToUpper(opts.envPrefix)); err != nil {
			return conf, fmt.Errorf("failed to load from environment: %w", err)
		}
	}

	if err := conf.Validate(); err != nil {
		return conf, err
	}

	return conf, nil
}

func loadFromFile(conf *Config, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(conf); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func applyDefaults(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if field.Kind() == reflect.Struct {
			if err := applyDefaults(field); err != nil {
				return err
			}
			continue
		}

		tag, ok := fieldType.Tag.Lookup("default")
		if !ok || !field.IsZero() {
			continue
		}

		if err := setValue(field, tag); err != nil {
			return fmt.Errorf("field %s: %w", fieldType.Name, err)
		}
	}

	return nil
}

func loadFromEnv(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		name := fieldType.Tag.Get("env")
		if name == "" || name == "-" {
			continue
		}

		key := prefix + "_" + name

		if field.Kind() == reflect.Struct {
			if err := loadFromEnv(field, key); err != nil {
				return err
			}
			continue
		}

		raw, ok := os.LookupEnv(key)
		if !ok {
			continue
		}

		if err := setValue(field, raw); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	return nil
}

func setValue(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)

	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)

	default:
		return fmt.Errorf("unsupported kind %s", field.Kind())
	}

	return nil
}

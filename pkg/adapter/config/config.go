// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config makes it possible to load the YAML configuration
// settings of the movaweb binary. The configuration file format is
// versioned; a binary refuses files with an incompatible major
// version or a minor version which is newer than the known one.
package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mova-mz/mova-core/pkg/adapter/alert/logalert"
	"github.com/mova-mz/mova-core/pkg/adapter/config/settings"
	"github.com/mova-mz/mova-core/pkg/adapter/db/postgres"
	"github.com/mova-mz/mova-core/pkg/adapter/restful/gin"
	"github.com/mova-mz/mova-core/pkg/adapter/stream/kafka"
	"github.com/mova-mz/mova-core/pkg/core/cerr"
	"github.com/mova-mz/mova-core/pkg/core/event"
	"github.com/mova-mz/mova-core/pkg/core/model"
	"github.com/mova-mz/mova-core/pkg/core/repo"
	"github.com/mova-mz/mova-core/pkg/core/usecase/notifuc"
	"gopkg.in/yaml.v3"
)

// These constants define the major, minor, and patch version of the
// configuration settings which are supported by the Config struct.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// Version is the semantic version of Config struct.
var Version = model.SemVer{Major, Minor, Patch}

var validate = validator.New()

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases. It is preferred to
// implement Config with primitive fields or other structs which are
// defined locally, not models or structs which are defined in lower
// layers, so the configuration can be versioned and kept intact while
// other layers can change freely.
type Config struct {
	Database Database // PostgreSQL database connection settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Kafka    Kafka    // change-event stream consumption settings
	Usecases Usecases // Configuration settings for supported use cases

	// Vers contains the configuration file version string
	// corresponding to this Config instance.
	Vers Vers `yaml:",inline"`
}

// Load unmarshals the data byte slice and loads a Config instance
// assuming that it contains the Config settings. Extra items in the
// data will be ignored and missing items will take their default
// values. Thereafter, loaded Config will be validated and normalized
// in order to ensure that provided settings are acceptable (for
// example the major version which is reported by data settings must
// match with the Major constant of this package).
func Load(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// LoadFile reads the given file path and loads a Config instance from
// its contents using the Load function.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q config file: %w", path, err)
	}
	c, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("loading %q config file: %w", path, err)
	}
	return c, nil
}

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It can also modify
// settings in order to normalize them or replace some missing values
// with their expected default values (if any).
func (c *Config) ValidateAndNormalize() error {
	if err := c.Vers.Validate(Major, Minor); err != nil {
		return fmt.Errorf(
			"expecting version v%d.%d: %w", Major, Minor, err,
		)
	}
	settings.Nil2Zero(&c.Gin.Logger)
	settings.Nil2Zero(&c.Gin.Recovery)
	settings.Nil2Default(&c.Usecases.Notifications.Enabled, true)
	c.Database.Normalize()
	c.Kafka.Normalize()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating settings: %w", err)
	}
	return nil
}

// Version returns the semantic version of this Config struct contents
// which its major version is equal to the Major constant, while its
// minor and patch versions may correspond to the Minor and Patch
// constants or may describe an older version.
func (c *Config) Version() model.SemVer {
	return c.Vers.Versions.Config
}

// Vers contains the version of the configuration file format. The
// version should be known before trying to parse the actual settings,
// so their format can be verified when loading them; although the
// format of keeping the version may change too, it is less likely to
// change over time.
type Vers struct {
	Versions Versions `yaml:"versions"`
}

// Versions contains the configuration file version which is used for
// detecting the relevant settings format.
type Versions struct {
	Config model.SemVer `yaml:"config"`
}

// Validate returns an error if the configuration settings version
// which is stored in the `v` Vers instance is not supported by the
// given major and minor version arguments. That is, stored major
// version must match with the major argument and the stored minor
// version must be at most equal with the given minor version (not
// newer than it).
func (v *Vers) Validate(major, minor uint) error {
	cv := v.Versions.Config
	if cv[0] != major || cv[1] > minor {
		return &cerr.MismatchingSemVerError{
			model.SemVer{major, minor, Patch}, cv,
		}
	}
	return nil
}

// Database contains the database related configuration settings.
type Database struct {
	Host    string `validate:"required"`        // DBMS server address
	Port    int    `validate:"min=1,max=65535"` // DBMS server port
	Name    string `validate:"required"`        // database name
	Role    string `validate:"required"`        // database role name
	PassDir string `yaml:"pass-dir" validate:"required"`
}

// Normalize replaces missing database settings with their default
// values (if any).
func (d *Database) Normalize() {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.Role == "" {
		d.Role = "mova"
	}
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the `d` settings.
// The .pgpass file in the d.PassDir folder is read which should
// conform with the pgpass format with lines like this:
//
//	host:port:dbname:role:password
func (d Database) ConnectionPool(ctx context.Context) (
	repo.Pool, error,
) {
	path := filepath.Join(d.PassDir, ".pgpass")
	u, err := d.ConnectionURL(path)
	if err != nil {
		return nil, fmt.Errorf("using %q pass-file: %w", path, err)
	}
	p, err := postgres.NewPool(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("connecting to %q: %w", d.Name, err)
	}
	return p, nil
}

// ConnectionURL returns the database connection URL embedding the
// host, port, role name, database name, and password value. These
// items are directly taken from the `d` settings, but the password
// value which is read from the given `path` file. Returned URL has
// the postgresql scheme.
// The `path` file may contain empty or `#`-commented lines in
// addition to the password specifying lines which should conform with
// the pgpass files format with lines like this:
//
//	host:port:dbname:role:password
//
// If the `path` file could be read and a password for the configured
// role could be identified, a URL and a nil error will be returned.
// Otherwise, returned string will be empty and error will describe
// the wrapped error condition.
func (d Database) ConnectionURL(path string) (string, error) {
	passLines, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading pass-file: %w", err)
	}
	prfx := fmt.Sprintf("%s:%d:%s:%s:", d.Host, d.Port, d.Name, d.Role)
	var pass string
	for _, line := range strings.Split(string(passLines), "\n") {
		if line == "" || line[0] == '#' {
			continue
		}
		if strings.HasPrefix(line, prfx) {
			pass = line[len(prfx):]
			break
		}
	}
	if pass == "" {
		return "", fmt.Errorf("no matching password line")
	}
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(d.Role, pass),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	return u.String(), nil
}

// Gin contains the gin-gonic related configuration settings.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized and replace the missing items by their
// default values during the normalization.
type Gin struct {
	Logger   *bool // Whether to register the gin.Logger() middleware
	Recovery *bool // Whether to register the gin.Recovery() middleware
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 2)
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	return gin.New(middlewares...)
}

// Kafka contains the change-event stream consumption settings.
type Kafka struct {
	// Brokers lists the bootstrap broker addresses as host:port.
	Brokers []string `validate:"required,min=1,dive,hostname_port"`

	// GroupID is the consumer-group prefix; every subscription
	// derives its own consumer group from it.
	GroupID string `yaml:"group-id" validate:"required"`

	// TopicPrefix is prepended to a table name in order to obtain its
	// change-event topic name.
	TopicPrefix string `yaml:"topic-prefix"`

	// CommitInterval and MaxWait tune the consumption loop; missing
	// values are defaulted by the stream adapter itself.
	CommitInterval *settings.Duration `yaml:"commit-interval"`
	MaxWait        *settings.Duration `yaml:"max-wait"`
}

// Normalize replaces missing stream settings with their default
// values (if any).
func (k *Kafka) Normalize() {
	if k.GroupID == "" {
		k.GroupID = "movaweb"
	}
	if k.TopicPrefix == "" {
		k.TopicPrefix = "mova."
	}
}

// NewStream instantiates a Kafka-backed change-event stream based on
// the `k` settings.
func (k Kafka) NewStream() (*kafka.Stream, error) {
	opts := make([]kafka.Option, 0, 2)
	if k.CommitInterval != nil {
		opts = append(opts, kafka.WithCommitInterval(
			time.Duration(*k.CommitInterval),
		))
	}
	if k.MaxWait != nil {
		opts = append(opts, kafka.WithMaxWait(
			time.Duration(*k.MaxWait),
		))
	}
	return kafka.New(k.Brokers, k.GroupID, k.TopicPrefix, opts...)
}

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Notifications Notifications // notifications aggregator settings
}

// Notifications contains the configuration settings for the
// notifications use case.
type Notifications struct {
	// Enabled indicates whether the aggregator should be activated
	// and subscribed to the change-event stream at startup. A missing
	// value defaults to true. A disabled aggregator still serves the
	// user-facing notification APIs, but collects no events.
	Enabled *bool
}

// NewUseCase instantiates a new notifications use case based on the
// settings in the `n` struct, consuming the `s` change-event stream.
func (n Notifications) NewUseCase(s event.Stream) (
	*notifuc.UseCase, error,
) {
	return notifuc.New(s, notifuc.WithAlerter(logalert.New()))
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/specialistvlad/domdist/internal/cost"
)

// StdinPath selects standard input as the case source.
const StdinPath = "-"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	CasesPath string `validate:"required"` // file, directory or "-"

	Workers  int           `validate:"min=1,max=1024"`
	Script   bool          // print edit scripts
	Check    bool          // fail on expected-distance mismatches
	FailFast bool          // stop at the first case error
	Timeout  time.Duration `validate:"gte=0"` // zero means no limit

	// Operation weights for the cost model. All three zero selects the
	// unweighted default model.
	DeleteWeight     int `validate:"gte=0"`
	InsertWeight     int `validate:"gte=0"`
	SubstituteWeight int `validate:"gte=0"`

	LogFormat       string `validate:"oneof=text json"`
	LogLevel        string `validate:"oneof=debug info warn error"`
	HealthcheckPort int    `validate:"min=0,max=65535"`
}

var configValidate = validator.New()

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := configValidate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// costModel returns the model described by the weight fields.
func (c *Config) costModel() (cost.Model, error) {
	if c.DeleteWeight == 0 && c.InsertWeight == 0 && c.SubstituteWeight == 0 {
		return cost.Default, nil
	}
	return cost.NewWeighted(cost.Weights{
		Delete:     c.DeleteWeight,
		Insert:     c.InsertWeight,
		Substitute: c.SubstituteWeight,
	})
}

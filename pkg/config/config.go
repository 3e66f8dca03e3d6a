/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package config decodes the orchestrator's PCR policy and retry policy out
// of a generic map (as loaded from YAML/JSON/env by a host application),
// following the same mapstructure decode-hook idiom used elsewhere in the
// corpus for human-readable duration strings.
package config

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/kmyth-go/ski/pkg/seal"
	"github.com/kmyth-go/ski/pkg/skierr"
	"github.com/kmyth-go/ski/pkg/tpmcodec"
)

// PcrBankConfig is the decode target for one PCR bank entry.
type PcrBankConfig struct {
	HashAlg uint16 `mapstructure:"hash_alg"`
	Select  []byte `mapstructure:"select"`
}

// Config is the full set of orchestrator-facing settings a host application
// may load from its own configuration source.
type Config struct {
	// PcrBanks names the PCR banks new storage keys are sealed against.
	PcrBanks []PcrBankConfig `mapstructure:"pcr_banks"`

	// Retry bounds TpmSession retry behavior (see seal.RetryPolicy).
	Retry seal.RetryPolicy `mapstructure:"retry"`
}

// Decode builds a Config from a generic map, such as one produced by a YAML
// or JSON unmarshal into map[string]interface{}. Duration fields accept
// either a Go duration string ("30s", "5m") or a plain integer count of
// nanoseconds.
func Decode(raw map[string]interface{}) (Config, error) {
	var cfg Config

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: durationDecodeHook(),
		Result:     &cfg,
	})
	if err != nil {
		return Config{}, skierr.Wrap(skierr.InvalidArgument, "config.decode", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return Config{}, skierr.Wrap(skierr.InvalidArgument, "config.decode", err)
	}

	return cfg, nil
}

// PcrPolicy converts the decoded bank list into the seal package's PcrPolicy.
func (c Config) PcrPolicy() seal.PcrPolicy {
	banks := make([]tpmcodec.PcrBank, len(c.PcrBanks))
	for i, b := range c.PcrBanks {
		banks[i] = tpmcodec.PcrBank{HashAlg: b.HashAlg, Select: b.Select}
	}
	return seal.PcrPolicy{Banks: banks}
}

// durationDecodeHook converts strings and plain integers into time.Duration,
// the same way host applications typically write "30s" rather than a raw
// nanosecond count in configuration files.
func durationDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return time.ParseDuration(v)
		case int:
			return time.Duration(v), nil
		case int64:
			return time.Duration(v), nil
		case float64:
			return time.Duration(v), nil
		default:
			return data, nil
		}
	}
}

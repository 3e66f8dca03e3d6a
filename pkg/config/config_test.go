/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmyth-go/ski/pkg/config"
)

func TestDecodeParsesDurationStrings(t *testing.T) {
	raw := map[string]interface{}{
		"pcr_banks": []interface{}{
			map[string]interface{}{
				"hash_alg": 11,
				"select":   []byte{0, 0, 0, 0},
			},
		},
		"retry": map[string]interface{}{
			"initial_interval": "50ms",
			"max_elapsed_time": "2s",
			"max_retries":      3,
		},
	}

	cfg, err := config.Decode(raw)
	require.NoError(t, err)

	require.Len(t, cfg.PcrBanks, 1)
	assert.Equal(t, uint16(11), cfg.PcrBanks[0].HashAlg)
	assert.Equal(t, 50*time.Millisecond, cfg.Retry.InitialInterval)
	assert.Equal(t, 2*time.Second, cfg.Retry.MaxElapsedTime)
	assert.Equal(t, uint64(3), cfg.Retry.MaxRetries)
}

func TestDecodeAcceptsNanosecondInts(t *testing.T) {
	raw := map[string]interface{}{
		"retry": map[string]interface{}{
			"initial_interval": int64(1000),
		},
	}

	cfg, err := config.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(1000), cfg.Retry.InitialInterval)
}

func TestDecodeRejectsMalformedDuration(t *testing.T) {
	raw := map[string]interface{}{
		"retry": map[string]interface{}{
			"initial_interval": "not-a-duration",
		},
	}

	_, err := config.Decode(raw)
	require.Error(t, err)
}

func TestPcrPolicyConversion(t *testing.T) {
	cfg, err := config.Decode(map[string]interface{}{
		"pcr_banks": []interface{}{
			map[string]interface{}{"hash_alg": 11, "select": []byte{0xFF}},
		},
	})
	require.NoError(t, err)

	policy := cfg.PcrPolicy()
	require.Len(t, policy.Banks, 1)
	assert.Equal(t, uint16(11), policy.Banks[0].HashAlg)
	assert.Equal(t, []byte{0xFF}, policy.Banks[0].Select)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const clientEnvPrefix = "LINKCTL_"

// parseEnv fills cfg from the environment. Nested groups are resolved
// through their envPrefix tags, and prefix is prepended to every lookup.
func parseEnv(cfg any, prefix string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

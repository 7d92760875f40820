// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"github.com/SoftbearStudios/crater/server/terrain"
)

func terrainConfig(seed int64) terrain.Config {
	config := terrain.DefaultConfig()
	config.Seed = seed
	return config
}

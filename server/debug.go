// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"fmt"
	"runtime"

	"github.com/SoftbearStudios/crater/server/logger"
	"go.uber.org/zap"
)

// Debug logs the state of the hub and its terrain.
func (h *Hub) Debug() {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	fields := []zap.Field{
		zap.Uint64("heapInuseMB", stats.HeapInuse/1e6),
		zap.Uint64("nextGCMB", stats.NextGC/1e6),
		zap.Int("sockets", h.clients.len()-h.clients.bots),
		zap.Int("bots", h.clients.bots),
		zap.Int("queued", len(h.inbound)),
		zap.String("fs", fmt.Sprint(h.fs)),
	}
	if h.bot != nil {
		fields = append(fields, zap.Int("bombarded", h.bot.impacts))
	}
	logger.Log.Info("hub", fields...)

	h.terrain.Debug()
}

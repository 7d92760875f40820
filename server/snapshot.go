// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"bytes"
	"image/png"
	"time"

	"github.com/SoftbearStudios/crater/server/logger"
	"github.com/SoftbearStudios/crater/server/terrain"
	"go.uber.org/zap"
)

const (
	snapshotFile  = "terrain.png"
	snapshotWidth = 1024
)

// SnapshotTerrain renders the published terrain and uploads it in the background.
func (h *Hub) SnapshotTerrain() {
	published := h.Published()

	var buf bytes.Buffer
	if err := png.Encode(&buf, terrain.RenderWidth(published.Data(), snapshotWidth)); err != nil {
		logger.Log.Error("could not encode terrain snapshot", zap.Error(err))
		return
	}

	secondsCache := int(h.snapshotPeriod / time.Second)
	filesystem := h.fs
	version := published.Data().Version

	go func() {
		if err := filesystem.UploadStaticFile(snapshotFile, secondsCache, buf.Bytes()); err != nil {
			logger.Log.Warn("could not upload terrain snapshot", zap.Error(err))
			return
		}
		logger.Log.Info("uploaded terrain snapshot", zap.Uint64("version", version), zap.Int("bytes", buf.Len()))
	}()
}

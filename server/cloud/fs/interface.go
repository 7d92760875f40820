// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package fs uploads rendered terrain snapshots to static storage.
package fs

type Filesystem interface {
	UploadStaticFile(filename string, secondsCache int, data []byte) error
}

// Offline discards uploads. It is used when no bucket is configured.
type Offline struct{}

func (Offline) String() string {
	return "offline"
}

func (Offline) UploadStaticFile(string, int, []byte) error {
	return nil
}

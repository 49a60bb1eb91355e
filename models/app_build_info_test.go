// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.0.0", "", "abc123")

	assert.Equal(t, "v1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())

	var buf bytes.Buffer
	info.Print(&buf)
	assert.Equal(t, "Build version: v1.0.0\nBuild date: N/A\nBuild commit: abc123\n", buf.String())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// AppBuildInfo is the build metadata injected with -ldflags at release time.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo returns build metadata. Blank values are reported as "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNA(version),
		date:    orNA(date),
		commit:  orNA(commit),
	}
}

func (a AppBuildInfo) Version() string { return orNA(a.version) }
func (a AppBuildInfo) Date() string    { return orNA(a.date) }
func (a AppBuildInfo) Commit() string  { return orNA(a.commit) }

// String renders the metadata the way the client prints it at startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.Version(), a.Date(), a.Commit())
}

func orNA(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "N/A"
	}
	return v
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// unknownBuildValue is reported for metadata the linker did not inject.
const unknownBuildValue = "N/A"

// AppBuildInfo is the linker-injected build metadata of the dev server. It is
// served by the version endpoint and the app_version setting.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return orUnknown(a.version) }

func (a AppBuildInfo) BuildDate() string { return orUnknown(a.date) }

func (a AppBuildInfo) BuildCommit() string { return orUnknown(a.commit) }

// AsSetting renders the metadata in the shape of the app_version setting.
func (a AppBuildInfo) AsSetting() map[string]string {
	return map[string]string{
		"current_version": a.BuildVersion(),
		"build_date":      a.BuildDate(),
		"build_commit":    a.BuildCommit(),
	}
}

func orUnknown(v string) string {
	if v == "" {
		return unknownBuildValue
	}
	return v
}

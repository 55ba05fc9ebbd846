//go:build tools
// +build tools

package tools

import (
	// golangci-lint v2 requires go >= 1.24; no release builds with the
	// go 1.21 toolchain available here, so the pin is disabled.
	// _ "github.com/golangci/golangci-lint/v2/cmd/golangci-lint"
	_ "github.com/google/wire/cmd/wire"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/wadey/gocovmerge"
	_ "go.uber.org/mock/gomock"
	_ "mvdan.cc/gofumpt"
)

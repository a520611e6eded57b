//go:build tools
// +build tools

// Package main pins build-time tool dependencies so `go mod tidy`
// keeps them in go.mod.
package main

import (
	_ "github.com/golangci/golangci-lint/v2/cmd/golangci-lint"
	_ "golang.org/x/tools/cmd/stringer"
	_ "gotest.tools/gotestsum"
)

// Package mocks provides mock implementations for testing the login flow.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the auth ports. The generated files are committed so tests build
// without a codegen step.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

// Generate mocks for the OAuthFlow and RolePolicy ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=ports_mock.go github.com/brazil-data-cube/hubauth/internal/ports OAuthFlow,RolePolicy

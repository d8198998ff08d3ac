// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific logic lives in sub-packages (domain/sitemap, domain/about).
// This root package holds the sentinel errors and the InternalError type that
// make up the error taxonomy shared by every layer.
package domain

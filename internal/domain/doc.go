// Package domain contains shared domain types used across the domain
// sub-packages. The identifier engine lives in domain/action and action
// declarations live in domain/catalog. This root package holds the sentinel
// errors and the validation error type they share.
package domain

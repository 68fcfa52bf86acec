// Package domain contains the core domain model for Kolovorot.
//
// The domain is storage- and format-agnostic: it does not depend on YAML parsing,
// HTML, CSV or SQL. Infra/adapters map into/from these types.
package domain

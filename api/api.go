// Package api embeds the HTTP contract served by the echo transport.
package api

import _ "embed"

//go:embed openapi.yaml
var OpenAPISpec []byte

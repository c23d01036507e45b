// Package openapi embeds the OpenAPI document of the HTTP API.
package openapi

import _ "embed"

//go:embed openapi.yaml
var Spec []byte

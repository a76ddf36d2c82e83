// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var errHealthPanicked = errors.New("health check panicked")

// Messages of the errors raised while binding request bodies.
const (
	msgInvalidJSON     = "Invalid JSON was passed"
	msgBodyTooLarge    = "Request body too large"
	msgNotFound        = "Not Found"
	msgNotFoundDetails = "The requested resource was not found on this server."
)

// fallbackErrorBody is written when the normalizer itself fails.
const fallbackErrorBody = `{"error":{"message":"Internal Server Error","statusCode":500}}`

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apierr defines the closed set of request errors understood by the
// gateway's error normalizer.
//
// Every error that reaches the request boundary falls into exactly one
// [Kind]:
//   - [KindValidation]: client data failed schema constraints ([ValidationError]);
//   - [KindApplication]: a business rule rejected the request with an explicit
//     status code ([ApplicationError]);
//   - [KindUnclassified]: anything else, including recovered panics.
//
// [Classify] performs the exhaustive match; handlers raise errors through the
// constructors in this package so that the raise-site stack is captured.
package apierr

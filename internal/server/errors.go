// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("neither http nor grpc server is configured")
	errNoServersToRun      = errors.New("no servers to run")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the brainsyncd process runtime.
//
// It owns the lifecycle of the background sync job: start polling on
// launch, and shut the job down cleanly when the process receives an
// interrupt or termination signal.
package client

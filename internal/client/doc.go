// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive console client.
//
// It wires the vault service, the key session and its idle watcher into a
// single process lifecycle and reads commands line by line. Passwords are
// read from the terminal without echo.
package client

// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

/*
Package router defines the route table using Go 1.22+ method-aware
ServeMux patterns and wires the store, services, and handlers together.
*/
package router

// Package pkg provides the core libraries for the wheelhouse installer.
//
// # Overview
//
// Wheelhouse installs exactly pinned, single-file pure-Python wheels from a
// PEP 503 simple index. The pkg directory is organized by pipeline stage:
//
//  1. [requirements] - Parse name==version pins from text, files, pyproject.toml
//  2. [index] - Fetch and scrape simple-index listing pages
//  3. [wheel] - Select the matching py3-none-any artifact and validate archives
//  4. [store] - Persist wheels and register search roots
//  5. [installer] - Drive the full batch pipeline
//
// Supporting packages: [transport] (the injected network collaborator),
// [httputil] (file cache and retry helpers), [errors] (structured error
// codes and input validation), [config] (TOML settings), [observability]
// (instrumentation hooks), and [buildinfo] (ldflags version metadata).
//
// # Architecture
//
// The data flow for one pin:
//
//	name==version
//	     ↓
//	[requirements] package (parse and normalize)
//	     ↓
//	[index] package (fetch listing page, scrape anchors)
//	     ↓
//	[wheel] package (select first qualifying artifact, validate zip)
//	     ↓
//	[store] package (persist, register search root)
//
// # Quick Start
//
// Install a batch of pins:
//
//	import (
//	    "context"
//	    "github.com/wheelhouse-py/wheelhouse/pkg/installer"
//	    "github.com/wheelhouse-py/wheelhouse/pkg/requirements"
//	)
//
//	reqs, _ := requirements.ParseString("typing-extensions==4.8.0\nidna==3.4\n")
//	runner, _ := installer.NewRunner(installer.Options{StoreDir: "./wheels"})
//	report, err := runner.Install(context.Background(), reqs)
//
// The batch is strictly sequential and aborts on the first failure;
// report.Installed lists what landed before the abort.
//
// # Testing
//
// Run tests:
//
//	go test ./...                 # All tests
//	go test ./pkg/wheel/...       # Specific package
//
// [requirements]: https://pkg.go.dev/github.com/wheelhouse-py/wheelhouse/pkg/requirements
// [index]: https://pkg.go.dev/github.com/wheelhouse-py/wheelhouse/pkg/index
// [wheel]: https://pkg.go.dev/github.com/wheelhouse-py/wheelhouse/pkg/wheel
// [store]: https://pkg.go.dev/github.com/wheelhouse-py/wheelhouse/pkg/store
// [installer]: https://pkg.go.dev/github.com/wheelhouse-py/wheelhouse/pkg/installer
// [transport]: https://pkg.go.dev/github.com/wheelhouse-py/wheelhouse/pkg/transport
// [httputil]: https://pkg.go.dev/github.com/wheelhouse-py/wheelhouse/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/wheelhouse-py/wheelhouse/pkg/errors
// [config]: https://pkg.go.dev/github.com/wheelhouse-py/wheelhouse/pkg/config
// [observability]: https://pkg.go.dev/github.com/wheelhouse-py/wheelhouse/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/wheelhouse-py/wheelhouse/pkg/buildinfo
package pkg

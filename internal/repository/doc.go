// Package repository probes the configured artifact repositories for
// reachability. Probes are throttled by a token bucket and fanned out with a
// bounded number of workers; results always keep the order of the input.
package repository

// Package config loads chord bindings and runtime settings from files.
//
// Two file kinds are involved. A bindings file is JSON mapping chord
// specs to named actions:
//
//	{
//	  "leader": "<C-t>",
//	  "timeout_ms": 1000,
//	  "bindings": [
//	    {"keys": "i k", "action": "terminal", "description": "open a terminal"},
//	    {"keys": "i w", "action": "browser"}
//	  ]
//	}
//
// Actions are referenced by name; the caller supplies a Resolver that
// turns names into callables (the script package provides one for
// Lua-defined actions). The runtime config is TOML, found under the XDG
// config directory or next to the binary, and carries the knobs the demo
// binary needs.
package config

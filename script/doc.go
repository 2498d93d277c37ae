// Package script lets chord bindings be defined in Lua.
//
// A user script sees a `keychord` table with two entry points:
//
//	-- bind a chord directly to a function
//	keychord.bind("i k", function() ... end, "open a terminal")
//
//	-- register a named action for use from a JSON bindings file
//	keychord.action("browser", function() ... end)
//
// The Engine runs scripts in a restricted state: only the base, table,
// string and math libraries are open, and the load/dofile family is
// removed, so a bindings script cannot touch the filesystem or spawn
// processes. Bound Lua functions are wrapped in Go closures that call
// back into the interpreter; runtime errors inside an action are
// reported through the engine's error handler rather than crashing the
// host (chord actions have no return path of their own).
//
// gopher-lua states are not goroutine-safe; the engine serializes every
// interpreter touch behind one mutex.
package script

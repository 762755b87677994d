/*
Package dino is a minimal native shared library loader, built on [purego] for unix and on the windows loader API.

# License

Source codes are under Apache License Version 2.0.

# Underwater

 1. A [Handle] owns one native library handle, moving it empties the source, releasing it is idempotent.
 2. A [Library] pairs a [Name] with its Handle. Opening never panics: a failed open gives an inactive Library and an error.
 3. [Find] binds a resolved address to a Go func type, [FindEntrypoint] binds the launcher entrypoint contract.
 4. Native loader diagnostics are returned as errors and, when installed, also delivered to the [SetOnError] callback.

# Notes

 1. Nothing can verify the real signature of a native symbol, a mismatched Go func type is undefined behaviour.
 2. Symbols are only valid while their Library is open.
 3. Library is not thread-safe, the diagnostic callback is.

# Entrypoint contract

A module loaded by the dinex launcher exports:

	int run(struct { int argc; const char *const *argv; } args);

where argv[0] is the path the module was loaded from.

# Object modules

Package object loads Go object files instead of native libraries. It needs a Go SDK prepared for goloader
and is only compiled with the goloader build tag, which also adds it to the dinex launcher:

	go test -tags goloader ./object/ ./launcher/
	go build -tags goloader ./dinex

# Samples

See tests and the dinex testdata.

[purego]: https://github.com/ebitengine/purego
*/
package dino

//go:build !(amd64 || arm64 || 386 || arm || riscv64 || loong64 || mipsle || mips64le || ppc64le || wasm)

package main

// ia32core is built only for the little-endian targets listed in
// le_check.go (its memory accessors use explicit little-endian shifts and
// do not themselves depend on host byte order). This deliberately fails to
// compile on anything else.
var _ = "ia32core requires a little-endian host" + 1

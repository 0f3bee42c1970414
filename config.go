// config.go - run-time configuration, mirroring the shape of
// cpu_x86_runner.go's CPUX86Config (LoadAddr, Entry, ...).

package main

// Config gathers everything the CLI needs to construct and run an
// Emulator against a loaded image.
type Config struct {
	ImagePath string
	BaseDir   string

	LoadAddr uint32
	Entry    uint32
	InitESP  uint32
	MemSize  int

	Trace bool
	Steps uint64 // 0 means unlimited
}

// DefaultConfig mirrors the entry/ESP values spec.md §8's concrete test
// scenarios assume (entry eip = 0x7C00, ESP = 0x7C00), the classic x86
// boot-sector load address.
func DefaultConfig() Config {
	return Config{
		LoadAddr: 0x7C00,
		Entry:    0x7C00,
		InitESP:  0x7C00,
		MemSize:  1 << 20, // 1 MiB
	}
}

package extent

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Extent is a read-only memory mapping of an input file. The mapped bytes may
// be shared across any number of goroutines; nothing ever writes to them.
type Extent struct {
	data []byte
}

// Map opens path and maps it read-only. An empty file yields an empty extent
// without touching mmap.
func Map(path string) (*Extent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return &Extent{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	return &Extent{data: data}, nil
}

func (e *Extent) Bytes() []byte {
	return e.data
}

// Close unmaps the extent. Slices of Bytes, and any strings aliasing them,
// must not be used afterwards.
func (e *Extent) Close() error {
	if e.data == nil {
		return nil
	}
	data := e.data
	e.data = nil
	return unix.Munmap(data)
}

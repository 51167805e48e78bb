package fbdev

import (
	"sync"

	"github.com/juju/errors"

	"github.com/BeatGlow/framebuffer"
)

// Mirror copies the enabled framebuffer region of a memory arena into a
// destination, usually device memory.
type Mirror struct {
	mu sync.Mutex

	dst       []byte
	dstStride int

	arena    []byte
	pitch    int
	rowBytes int
	rows     int

	offset  int
	enabled bool
}

// NewMirror shows the arena region described by info on dst. Rows longer than
// dstStride are cut off, as are rows that do not fit in dst.
func NewMirror(dst []byte, dstStride int, arena []byte, info framebuffer.Info) *Mirror {
	rowBytes := info.Pitch
	if dstStride < rowBytes {
		rowBytes = dstStride
	}
	rows := info.Height
	if dstStride > 0 && len(dst)/dstStride < rows {
		rows = len(dst) / dstStride
	}
	return &Mirror{
		dst:       dst,
		dstStride: dstStride,
		arena:     arena,
		pitch:     info.Pitch,
		rowBytes:  rowBytes,
		rows:      rows,
	}
}

// EnableFramebuffer selects the region starting at offset within the arena.
func (m *Mirror) EnableFramebuffer(offset int) {
	m.mu.Lock()
	m.offset = offset
	m.enabled = true
	m.mu.Unlock()
}

// DisableFramebuffer stops mirroring.
func (m *Mirror) DisableFramebuffer() {
	m.mu.Lock()
	m.enabled = false
	m.mu.Unlock()
}

// Enabled reports whether a region is selected.
func (m *Mirror) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// Flush copies the selected region to the destination. It is a no-op while the
// mirror is disabled.
func (m *Mirror) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled || m.rows == 0 {
		return nil
	}
	size := (m.rows-1)*m.pitch + m.rowBytes
	if m.offset < 0 || m.offset > len(m.arena) || size > len(m.arena)-m.offset {
		return errors.NotValidf("framebuffer offset=%d size=%d in arena size=%d", m.offset, size, len(m.arena))
	}
	for y := 0; y < m.rows; y++ {
		src := m.arena[m.offset+y*m.pitch:]
		copy(m.dst[y*m.dstStride:y*m.dstStride+m.rowBytes], src[:m.rowBytes])
	}
	return nil
}

package protractor

// Target is one detection: an object or an open pathway.
type Target struct {
	Angle      int // degrees, 0 (left) .. 180 (right)
	Visibility int // 0..255, higher is stronger
}

// Scan is a typed view of one response, ordered most visible / most open
// first.
type Scan struct {
	Objects []Target
	Paths   []Target
}

// Snapshot decodes the current buffer into a Scan. Pure view, no I/O.
func (d *Device) Snapshot() Scan {
	var s Scan
	d.SnapshotInto(&s)
	return s
}

// SnapshotInto reuses out's slices across scans. Records whose bytes never
// arrived are skipped rather than reported with sentinel values.
func (d *Device) SnapshotInto(out *Scan) {
	out.Objects = out.Objects[:0]
	out.Paths = out.Paths[:0]
	for i := 0; i < d.ObjectCount(); i++ {
		a := d.ObjectAngle(i)
		if a < 0 {
			break
		}
		out.Objects = append(out.Objects, Target{Angle: a, Visibility: d.ObjectVisibility(i)})
	}
	for i := 0; i < d.PathCount(); i++ {
		a := d.PathAngle(i)
		if a < 0 {
			break
		}
		out.Paths = append(out.Paths, Target{Angle: a, Visibility: d.PathVisibility(i)})
	}
}

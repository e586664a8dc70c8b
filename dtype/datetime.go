package dtype

import (
	"strings"

	"go.uber.org/zap"
)

// datetimeMetadata returns the bracketed unit of a datetime or timedelta
// descriptor, e.g. "[ns]". The unit is read back from the derived name.
func (r *renderer) datetimeMetadata(d *Descriptor) string {
	name := d.Name()
	i := strings.LastIndexByte(name, '[')
	if i < 0 {
		r.log.Warn("datetime descriptor has no unit metadata",
			zap.String("name", name),
			zap.Stringer("kind", d.Kind))
		return ""
	}
	return name[i:]
}

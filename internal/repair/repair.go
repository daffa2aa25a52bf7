package repair

import (
	"motionsplit/internal/bytescan"
	"motionsplit/internal/scheme"
)

// Host returns the repaired host buffer for the given job. The result replaces
// the original file contents in full.
//
// Footer-offset hosts are truncated to drop the trailing payload. Surround-shot
// hosts additionally lose any stale panorama metadata: the buffer is cut at the
// first corruption marker and a JPEG end-of-image marker is appended so the
// stream stays syntactically valid. Hosts without the marker pass through
// unchanged, which makes the transform idempotent. Tag and box-scan schemes
// keep their bytes here; their trailer removal happens through the metadata
// tool.
func Host(job scheme.Job, buf []byte) []byte {
	out := buf
	if job.Kind.UsesFooterOffset() && job.HasFooterOffset {
		if keep := int64(len(out)) - job.FooterOffset; keep >= 0 {
			out = out[:keep]
		}
	}
	if job.Kind == scheme.SamsungSurroundShotVideo {
		out = stripPanoramaTrailer(out)
	}
	return out
}

func stripPanoramaTrailer(buf []byte) []byte {
	cut := -1
	for offset := range bytescan.All(buf, scheme.SamsungPanoramaMarker, 0) {
		cut = offset
		break
	}
	if cut < 0 {
		return buf
	}
	repaired := make([]byte, 0, cut+len(scheme.JPEGEndOfImage))
	repaired = append(repaired, buf[:cut]...)
	return append(repaired, scheme.JPEGEndOfImage...)
}

package scheme

import "strings"

// Fact is one detection result reported by the metadata tool for a candidate
// file. Vendors write overlapping metadata, so a single file can arrive with
// zero, one, or several facts.
type Fact struct {
	Kind      Kind
	Offset    int64
	HasOffset bool
}

// Job describes one classified motion photo. A job is created once per file,
// is immutable after creation, and is consumed exactly once by extraction and
// repair.
type Job struct {
	SourcePath      string
	Kind            Kind
	FooterOffset    int64
	HasFooterOffset bool
}

// Classify reduces the facts reported for a file to a single job. Zero facts
// means the file is not a motion photo; the second return value is false and
// the caller skips the file without error.
//
// When several facts apply, SamsungEmbeddedVideo wins: its payload comes from
// a self-describing tag the metadata tool isolates directly, which is cheaper
// and more exact than scanning file bytes. Otherwise the first fact in
// enumeration order is used.
func Classify(path string, facts []Fact) (Job, bool) {
	path = strings.TrimSpace(path)
	if len(facts) == 0 {
		return Job{}, false
	}

	chosen := facts[0]
	for _, fact := range facts {
		if fact.Kind == SamsungEmbeddedVideo {
			chosen = fact
			break
		}
	}

	job := Job{
		SourcePath: path,
		Kind:       chosen.Kind,
	}
	if chosen.Kind.UsesFooterOffset() && chosen.HasOffset {
		job.FooterOffset = chosen.Offset
		job.HasFooterOffset = true
	}
	return job, true
}

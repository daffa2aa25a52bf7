// Package repair produces the cleaned still-image buffer left after the video
// payload is removed from a motion photo, fixing known vendor corruption along
// the way. Repair is a pure in-memory transform; reading and rewriting the
// host file is the pipeline's job.
package repair

// Package scheme models the vendor conventions used to embed a video clip
// inside a still image, and classifies candidate files into jobs. Detection
// facts come from the external metadata tool; classification itself never
// touches file bytes.
package scheme

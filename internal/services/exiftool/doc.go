// Package exiftool wraps the exiftool binary behind the capability set the
// split pipeline needs: scheme fact queries, raw tag extraction, trailer
// stripping, tag copying, and structural validation of the repaired still.
// All proprietary and XMP tag knowledge lives in the tool; nothing here parses
// image metadata in-process.
package exiftool

package scheme

// JPEGEndOfImage is the two-byte JPEG end-of-image marker appended after
// repair truncation to keep the host stream syntactically valid.
var JPEGEndOfImage = []byte{0xFF, 0xD9}

// MP4BoxSignature is the 12-byte ftypisom box header that marks the start of
// an embedded MP4 stream in box-scan motion photos.
var MP4BoxSignature = []byte{
	0x00, 0x00, 0x00, 0x1C,
	0x66, 0x74, 0x79, 0x70, // "ftyp"
	0x69, 0x73, 0x6F, 0x6D, // "isom"
}

// SamsungPanoramaMarker is the 23-byte sequence preceding the stale panorama
// metadata some Samsung surround-shot files leave inside the compressed image
// stream. Everything from this marker onward is corruption.
var SamsungPanoramaMarker = []byte{
	0x00, 0x00, 0x01, 0x02, 0x17, 0x00, 0x00, 0x00,
	0x4D, 0x6F, 0x74, 0x69, 0x6F, 0x6E, 0x5F, // "Motion_"
	0x50, 0x61, 0x6E, 0x6F, 0x72, 0x61, 0x6D, 0x61, // "Panorama"
}

// internal/schema/frames.go
package schema

// Literal request frames for slave address 1. Check bytes are precomputed;
// changing an address or count means recomputing them outside this package.
var (
	frameInfo = []byte{0x01, 0x2B, 0x0E, 0x01, 0x00, 0x70, 0x77}

	frameRated = []byte{0x01, 0x43, 0x30, 0x00, 0x00, 0x0F, 0x0B, 0x01}

	frameRealtime1 = []byte{0x01, 0x43, 0x31, 0x00, 0x00, 0x76, 0xCB, 0x1F}
	frameRealtime2 = []byte{0x01, 0x43, 0x32, 0x00, 0x00, 0x04, 0x4B, 0x7E}

	frameStat = []byte{0x01, 0x43, 0x33, 0x00, 0x00, 0x76, 0xCA, 0xA7}

	frameSetting = []byte{0x01, 0x43, 0x90, 0x00, 0x00, 0x76, 0xE8, 0xE3}

	frameCoil = []byte{0x01, 0x01, 0x00, 0x02, 0x00, 0x04, 0x9C, 0x09}

	frameDiscrete1 = []byte{0x01, 0x02, 0x20, 0x00, 0x00, 0x01, 0xB2, 0x0A}
	frameDiscrete2 = []byte{0x01, 0x02, 0x20, 0x0C, 0x00, 0x01, 0x72, 0x09}
)

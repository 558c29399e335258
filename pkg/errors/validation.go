package errors

// Limits for request validation. The engine itself has no upper bound on
// maze size, but generation cost grows superlinearly with cell count, so
// user-facing surfaces reject absurd requests before they start.
const (
	// MaxDimension is the largest accepted width or height.
	MaxDimension = 512

	// MaxSeedPacketLen is the largest accepted seed packet.
	MaxSeedPacketLen = MaxDimension * MaxDimension
)

// ValidateDimensions validates maze dimensions from user input.
// Both values must be positive and no larger than [MaxDimension].
func ValidateDimensions(width, height int) error {
	if width < 1 || height < 1 {
		return New(ErrCodeInvalidDimensions, "dimensions must be positive, got %dx%d", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return New(ErrCodeInvalidDimensions, "dimensions too large (max %d), got %dx%d",
			MaxDimension, width, height)
	}
	return nil
}

// ValidateSeedPacket validates a user-supplied seed packet.
// Entries must be non-negative and the packet must not be absurdly long.
func ValidateSeedPacket(packet []int) error {
	if len(packet) > MaxSeedPacketLen {
		return New(ErrCodeInvalidSeedPacket, "seed packet too long (%d entries, max %d)",
			len(packet), MaxSeedPacketLen)
	}
	for i, v := range packet {
		if v < 0 {
			return New(ErrCodeInvalidSeedPacket, "seed packet entry %d is negative", i)
		}
	}
	return nil
}

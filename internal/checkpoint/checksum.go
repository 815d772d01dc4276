package checkpoint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"slices"

	"github.com/pkg/errors"
)

// ErrChecksumMismatch is returned by Load when the stored checksum does not
// match the parameters in the file.
var ErrChecksumMismatch = errors.New("checkpoint: checksum mismatch, file may be corrupted")

// computeChecksum hashes the architecture and the exact bits of every
// parameter, in name order.
func computeChecksum(c *Checkpoint) string {
	h := sha256.New()
	fmt.Fprintf(h, "dims=%v\nactivation=%s\n", c.Dims, c.Activation)

	names := make([]string, 0, len(c.Parameters))
	for name := range c.Parameters {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(h, "%s=%016x\n", name, math.Float64bits(c.Parameters[name]))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// validateChecksum compares the stored checksum against the parameters.
// Checkpoints without a checksum, such as hand-written ones, are accepted.
func validateChecksum(c *Checkpoint) error {
	if c.Checksum == "" {
		return nil
	}
	if computed := computeChecksum(c); computed != c.Checksum {
		return errors.Wrapf(ErrChecksumMismatch, "stored %s, computed %s", c.Checksum, computed)
	}
	return nil
}

package vm

// diskSizeFloorGiB leaves room for the OS image and the installed toolchain.
const diskSizeFloorGiB = 8

// DiskSize returns the root volume capacity (in GiB) for a verification run,
// derived from the ceremony artifact sizes. The zkey is counted twice since
// both the downloaded artifact and the verifier's working copy live on disk
// at the same time.
func DiskSize(zkeyBytes, ptauBytes int64) int32 {
	return int32(2*ceilGiB(zkeyBytes) + ceilGiB(ptauBytes) + diskSizeFloorGiB)
}

func ceilGiB(bytes int64) int64 {
	const gib = int64(1) << 30
	if bytes <= 0 {
		return 0
	}
	return (bytes + gib - 1) / gib
}

package vm

// script.go builds the shell command sequences executed by an instance on
// first boot. Artifact locators are opaque 'bucket/key' strings supplied by
// the caller; the builders interpolate them without inspecting them.

import (
	"github.com/kballard/go-shellquote"
)

// Local paths the startup script works against inside the instance.
const (
	localR1CSPath       = "/var/tmp/circuit.r1cs"
	localZKeyPath       = "/var/tmp/contribution.zkey"
	localPTauPath       = "/var/tmp/powers_of_tau.ptau"
	localTranscriptPath = "/var/tmp/verification_transcript.log"
	localSmokePath      = "/var/tmp/connectivity_check.txt"
)

// nodeSetupURL pins the Node.js major used to run the verification utility.
const nodeSetupURL = "https://deb.nodesource.com/setup_16.x"

// snarkjsVersion pins the verification utility itself.
const snarkjsVersion = "0.7.4"

// Artifacts names the object-storage locators for one verification run.
type Artifacts struct {
	R1CS       string
	ZKey       string
	PTau       string
	Transcript string
}

// VerificationScript produces the ordered shell statements a verification
// instance executes on first boot: bootstrap the toolchain, download the
// three ceremony artifacts, verify the contribution, and upload the
// transcript. Deterministic for identical inputs.
func VerificationScript(art Artifacts) []string {
	return []string{
		"sudo apt-get update",
		"sudo apt-get install -y awscli",
		"curl -fsSL " + nodeSetupURL + " | sudo bash -",
		"sudo apt-get install -y nodejs",
		"sudo npm install -g snarkjs@" + snarkjsVersion,
		"aws s3 cp " + shellquote.Join(s3URI(art.R1CS), localR1CSPath),
		"aws s3 cp " + shellquote.Join(s3URI(art.ZKey), localZKeyPath),
		"aws s3 cp " + shellquote.Join(s3URI(art.PTau), localPTauPath),
		"snarkjs zkey verify " + shellquote.Join(
			localR1CSPath,
			localPTauPath,
			localZKeyPath,
		) + " > " + localTranscriptPath,
		"aws s3 cp " + shellquote.Join(localTranscriptPath, s3URI(art.Transcript)),
	}
}

// SmokeScript produces the connectivity-check variant: it writes a fixed
// string to a fixed object and performs no verification. Kept as a separate
// builder so the production and diagnostic flows stay independently
// testable.
func SmokeScript(outputLocator string) []string {
	return []string{
		"sudo apt-get update",
		"sudo apt-get install -y awscli",
		"echo 'p0tion connectivity check' > " + localSmokePath,
		"aws s3 cp " + shellquote.Join(localSmokePath, s3URI(outputLocator)),
	}
}

func s3URI(locator string) string {
	return "s3://" + locator
}

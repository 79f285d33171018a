package domain

// AccessPolicy is the protection requested for stored secrets. Backends
// honor what their platform offers; see Unsupported.
type AccessPolicy struct {
	// RequireUnlocked makes entries readable only while the device is unlocked.
	RequireUnlocked bool

	// ThisDeviceOnly excludes entries from backups and cloud sync.
	ThisDeviceOnly bool

	// PreferHardware asks for secure-enclave or TPM backed storage when present.
	PreferHardware bool

	// RequireUserPresence gates reads behind biometry or the device passcode.
	RequireUserPresence bool
}

// DefaultAccessPolicy requests every protection.
func DefaultAccessPolicy() AccessPolicy {
	return AccessPolicy{
		RequireUnlocked:     true,
		ThisDeviceOnly:      true,
		PreferHardware:      true,
		RequireUserPresence: true,
	}
}

// Unsupported lists the flags requested by p that a backend able to honor
// only supported cannot provide.
func (p AccessPolicy) Unsupported(supported AccessPolicy) []string {
	var missing []string
	if p.RequireUnlocked && !supported.RequireUnlocked {
		missing = append(missing, "require_unlocked")
	}
	if p.ThisDeviceOnly && !supported.ThisDeviceOnly {
		missing = append(missing, "this_device_only")
	}
	if p.PreferHardware && !supported.PreferHardware {
		missing = append(missing, "prefer_hardware")
	}
	if p.RequireUserPresence && !supported.RequireUserPresence {
		missing = append(missing, "require_user_presence")
	}
	return missing
}

package models

// AccountChangeKind classifies remote-account lifecycle transitions
// delivered by the transport.
type AccountChangeKind int

const (
	// AccountSignIn: a remote account became available on this device.
	AccountSignIn AccountChangeKind = iota
	// AccountSwitchAccounts: the device switched to a different account.
	AccountSwitchAccounts
	// AccountSignOut: the account was removed from the device.
	AccountSignOut
)

func (k AccountChangeKind) String() string {
	switch k {
	case AccountSignIn:
		return "sign-in"
	case AccountSwitchAccounts:
		return "switch-accounts"
	case AccountSignOut:
		return "sign-out"
	default:
		return "unknown"
	}
}

// AccountChange is delivered when the remote account state changes.
type AccountChange struct {
	Kind AccountChangeKind `json:"kind"`
}

// AccountStatus is the availability of the remote account as reported by
// the account status provider.
type AccountStatus int

const (
	// AccountStatusUnknown means availability could not be determined.
	AccountStatusUnknown AccountStatus = iota
	// AccountAvailable means mutating operations may proceed.
	AccountAvailable
	// AccountUnavailable means no usable remote account is present.
	AccountUnavailable
)

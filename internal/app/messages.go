// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-journal-keeper services and the console client.
//
// All Msg* constants are human-readable strings shown to the user. Keeping
// them in one place ensures consistent wording, in particular for the
// warnings that come with a zero-knowledge design.
package app

const (
	// MsgPasswordUnrecoverable is shown at signup and before every password
	// change. Nobody, including the operator of the server, can recover the
	// journal without the password.
	MsgPasswordUnrecoverable = "Your password encrypts your journal on this device. " +
		"It is never sent anywhere and cannot be reset or recovered: " +
		"if you lose it, your entries are lost for good."

	// MsgDecryptionFailedPlaceholder is rendered in place of a field whose
	// ciphertext could not be decrypted, so one damaged record does not hide
	// the rest of the journal.
	MsgDecryptionFailedPlaceholder = "[unable to decrypt]"

	// MsgWrongPassword is shown when the derived key does not match the
	// stored verifier.
	MsgWrongPassword = "wrong password"

	// MsgEmptyPassword is shown when an empty password is entered.
	MsgEmptyPassword = "password must not be empty"

	// MsgLocked is shown when an operation needs the account key but the
	// session is locked.
	MsgLocked = "journal is locked, run \"unlock\" first"

	// MsgLockedAfterInactivity is shown when the idle timeout cleared the key.
	MsgLockedAfterInactivity = "journal locked after inactivity"

	// MsgAccountNotFound is shown when unlocking an unknown account.
	MsgAccountNotFound = "no such account"

	// MsgAccountAlreadyExists is shown when signing up with a taken account ID.
	MsgAccountAlreadyExists = "account already exists"

	// MsgStorageUnavailable is shown for transient storage failures. Nothing
	// was changed and the operation can be retried.
	MsgStorageUnavailable = "storage is temporarily unavailable, nothing was changed; please try again"

	// MsgPasswordChanged is shown after a successful password change. The
	// session is closed so every device unlocks again with the new password.
	MsgPasswordChanged = "password changed, %d records re-encrypted. Unlock again with the new password."

	// MsgPasswordChangeAborted is shown when a password change stopped. The
	// account stays on the previous password.
	MsgPasswordChangeAborted = "password change stopped while %s (%d of %d records processed). " +
		"Your previous password is still valid; nothing was changed."

	// MsgPasswordChangeConflict is shown when the account was modified while
	// a password change was running.
	MsgPasswordChangeConflict = "the journal changed while the password was being changed; please try again"

	// MsgNoResults is shown for an empty search result.
	MsgNoResults = "nothing found"
)

package reencrypt

// Stage is a state of a password-change run.
//
//	Idle → Fetching → Deriving → ReencryptingBatch → Committing → Done
//
// Failed is reachable from every stage after Idle; the stage it was reached
// from is carried alongside it.
type Stage string

const (
	StageIdle              Stage = "idle"
	StageFetching          Stage = "fetching"
	StageDeriving          Stage = "deriving"
	StageReencryptingBatch Stage = "reencrypting_batch"
	StageCommitting        Stage = "committing"
	StageDone              Stage = "done"
	StageFailed            Stage = "failed"
)

// Event is reported to the progress callback on every stage transition and
// after every record of the batch.
type Event struct {
	Stage Stage
	// FailedStage is set when Stage is StageFailed.
	FailedStage Stage
	Processed   int
	Total       int
}

// Request describes one password change.
type Request struct {
	AccountID   string
	NewPassword string
	// OnProgress, if set, is called synchronously and never concurrently.
	OnProgress func(Event)
}

// Result is returned by a completed run.
type Result struct {
	// Records is how many records were re-encrypted.
	Records int
	// CredentialVersion is the version of the new credential.
	CredentialVersion int64
	// RequiresReauth is always true after success: every client must unlock
	// again with the new password.
	RequiresReauth bool
}

package constants

// JobStatus is the canonical status for rows in process_jobs.
type JobStatus string

// Stable values (store these exact strings in the DB).
const (
	JobStatusQueued     JobStatus = "QUEUED"      // waiting for processing
	JobStatusRunning    JobStatus = "RUNNING"     // in progress
	JobStatusPrepOK     JobStatus = "PREP_OK"     // stage 1 completed (text prepared)
	JobStatusEntitiesOK JobStatus = "ENTITIES_OK" // stage 2 completed (entities extracted)
	JobStatusFailed     JobStatus = "FAILED"      // terminal failure
)

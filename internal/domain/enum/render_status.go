package enum

// RenderStatus is the observable state of a document render job.
type RenderStatus string

const (
	RenderStatusPending   RenderStatus = "pending"
	RenderStatusCompleted RenderStatus = "completed"
	RenderStatusFailed    RenderStatus = "failed"
)

func (s RenderStatus) String() string {
	return string(s)
}

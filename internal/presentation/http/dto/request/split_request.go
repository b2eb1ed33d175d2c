package request

// SplitRequest asks the reconciler to reapply one edit to a payment split.
// Changed names the side the user touched; the other side is recomputed from
// the live order total.
type SplitRequest struct {
	Total        FlexAmount `json:"total"`
	Percentage   int        `json:"percentage" binding:"min=0,max=100"`
	FirstAmount  FlexAmount `json:"first_amount"`
	SecondAmount FlexAmount `json:"second_amount"`
	Changed      string     `json:"changed" binding:"required,oneof=init percentage first second"`
}

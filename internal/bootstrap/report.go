package bootstrap

// Status is the outcome of one step.
type Status string

const (
	StatusOK      Status = "ok"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// StepResult records what happened to one step.
type StepResult struct {
	Step   string
	Status Status
	Detail string
}

// Report lists step results in execution order.
type Report struct {
	Results []StepResult
}

func (r *Report) record(step string, status Status, detail string) {
	r.Results = append(r.Results, StepResult{Step: step, Status: status, Detail: detail})
}

// Result returns the first result recorded for step.
func (r Report) Result(step string) (StepResult, bool) {
	for _, res := range r.Results {
		if res.Step == step {
			return res, true
		}
	}
	return StepResult{}, false
}

// Failed returns the results with StatusFailed.
func (r Report) Failed() []StepResult {
	var failed []StepResult
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Rows formats the report for a table: step, status, detail.
func (r Report) Rows() [][]string {
	rows := make([][]string, 0, len(r.Results))
	for _, res := range r.Results {
		rows = append(rows, []string{res.Step, string(res.Status), res.Detail})
	}
	return rows
}

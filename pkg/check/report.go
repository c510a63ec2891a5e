package check

import "log/slog"

// Reporter emits one structured log line per Evidence entry, tagged with the
// rule identifier, category and pass/fail status. Passing evidence logs at
// Info, failing evidence at Warn.
type Reporter struct {
	logger *slog.Logger
}

// NewReporter creates a reporter writing to logger.
func NewReporter(logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{logger: logger}
}

// Report emits the evidence of a single result.
func (rep *Reporter) Report(res Result) {
	for _, ev := range res.Passed {
		rep.logger.Info(ev.Message,
			"rule", res.RuleID,
			"name", res.Name,
			"category", res.Category.String(),
			"status", "passed")
	}
	for _, ev := range res.Failed {
		rep.logger.Warn(ev.Message,
			"rule", res.RuleID,
			"name", res.Name,
			"category", res.Category.String(),
			"status", "failed")
	}
}

// ReportAll emits every result in order.
func (rep *Reporter) ReportAll(results []Result) {
	for _, res := range results {
		rep.Report(res)
	}
}

// Summary tallies a run's evidence.
type Summary struct {
	Rules           int `json:"rules"`
	Passed          int `json:"passed"`
	Failed          int `json:"failed"`
	FailedErrors    int `json:"failed_errors"`
	FailedAnomalies int `json:"failed_anomalies"`
}

// Summarize folds results into a Summary.
func Summarize(results []Result) Summary {
	var s Summary
	s.Rules = len(results)
	for _, res := range results {
		s.Passed += len(res.Passed)
		s.Failed += len(res.Failed)
		if len(res.Failed) == 0 {
			continue
		}
		switch res.Category {
		case CategoryError:
			s.FailedErrors += len(res.Failed)
		case CategoryAnomaly:
			s.FailedAnomalies += len(res.Failed)
		}
	}
	return s
}

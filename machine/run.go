package machine

// Verdict is the final classification of a run.
type Verdict int

//go:generate go tool stringer -linecomment -type=Verdict
const (
	VERDICT_ACCEPT              = Verdict(0) // accept
	VERDICT_REJECT_BY_RULE      = Verdict(1) // reject by rule
	VERDICT_REJECT_BY_NO_RULE   = Verdict(2) // reject by no rule
	VERDICT_TIME_LIMIT_EXCEEDED = Verdict(3) // time limit exceeded
)

var verdictMap = map[Outcome]Verdict{
	OUTCOME_ACCEPT:            VERDICT_ACCEPT,
	OUTCOME_REJECT_BY_RULE:    VERDICT_REJECT_BY_RULE,
	OUTCOME_REJECT_BY_NO_RULE: VERDICT_REJECT_BY_NO_RULE,
}

// Verdict classifies a run that has taken steps of at most limit steps.
// A limit of 0 or less is unbounded. done is false while the run may
// continue.
func (m *Machine) Verdict(steps int, limit int) (verdict Verdict, done bool) {
	verdict, done = verdictMap[m.outcome]
	if done {
		return
	}

	if limit > 0 && steps >= limit {
		verdict = VERDICT_TIME_LIMIT_EXCEEDED
		done = true
	}

	return
}

// Run steps the machine until it halts or limit steps have been taken, and
// returns the verdict. A limit of 0 or less runs until the machine halts,
// which never happens for a program that loops forever.
func (m *Machine) Run(limit int) (verdict Verdict) {
	var done bool
	for steps := 0; ; steps++ {
		verdict, done = m.Verdict(steps, limit)
		if done {
			return
		}
		// Cannot fail; the outcome is not terminal.
		_, _ = m.Step()
	}
}

package gate

// #region veto-type
// VetoType enumerates hard veto categories.
type VetoType string

const (
	VetoUnknownQuestion VetoType = "unknown_question"
	VetoOutOfRange      VetoType = "out_of_range"
	VetoUnknownLocale   VetoType = "unknown_locale"
	VetoEmptyAnswers    VetoType = "empty_answers"
)

// #endregion veto-type

// #region veto-signal
// VetoSignal represents a detected hard veto condition.
type VetoSignal struct {
	Type   VetoType
	Reason string
}

// #endregion veto-signal

// #region gate-config
// GateConfig holds thresholds for gate decisions.
type GateConfig struct {
	// AllowPartial accepts answer sets covering only part of the bank;
	// coverage still flows into the soft score.
	AllowPartial bool
	// MinCompleteness rejects sets below this answered fraction when
	// AllowPartial is set. Zero disables the floor.
	MinCompleteness float64
}

// DefaultGateConfig accepts partial sets and leaves completeness as a soft
// signal only.
func DefaultGateConfig() GateConfig {
	return GateConfig{
		AllowPartial:    true,
		MinCompleteness: 0,
	}
}

// #endregion gate-config

// #region gate-decision
// Decision is the output of the gate evaluation.
type Decision struct {
	Action      string // "accept" | "reject"
	Reason      string
	Vetoed      bool
	VetoSignals []VetoSignal // non-empty if vetoed
	SoftScore   float64      // answered fraction of the bank, for logging
}

// #endregion gate-decision

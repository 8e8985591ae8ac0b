package recorder

// NoopRecorder is a no-op implementation used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordEarn(_ *EarnEvent) error               { return nil }
func (n *NoopRecorder) RecordSpend(_ *SpendEvent) error             { return nil }
func (n *NoopRecorder) RecordConversion(_ *ConversionEvent) error   { return nil }
func (n *NoopRecorder) RecordWaveEvent(_ *WaveEvent) error          { return nil }
func (n *NoopRecorder) RecordAllocation(_ *AllocationSnapshot) error { return nil }
func (n *NoopRecorder) Close() error                                { return nil }

package schema

import propbin "github.com/reoring/propbin"

// TelemetryDefinitionsSet lists the telemetry events a client may emit.
type TelemetryDefinitionsSet struct {
	Events         map[propbin.Hash]TelemetryEventDefinition `bin:"events,optional"`
	Version        *uint32                                   `bin:"version,optional"`
	PathHashToSelf *propbin.PathHash                         `bin:"pathHashToSelf,optional"`
}

type TelemetryEventDefinition struct {
	Name       string                     `bin:"name"`
	SampleRate *float32                   `bin:"sampleRate,optional"`
	Enabled    *bool                      `bin:"enabled,optional"`
	Fields     []TelemetryFieldDefinition `bin:"fields,optional"`
}

type TelemetryFieldDefinition struct {
	Name     string  `bin:"name"`
	Type     *uint8  `bin:"type,optional"`
	Required *bool   `bin:"required,optional"`
	MaxSize  *uint16 `bin:"maxSize,optional"`
}

func registerTelemetry(b *propbin.Builder) {
	propbin.Record[TelemetryDefinitionsSet](b, "TelemetryDefinitionsSet", propbin.AsAsset())
	propbin.Record[TelemetryEventDefinition](b, "TelemetryEventDefinition")
	propbin.Record[TelemetryFieldDefinition](b, "TelemetryFieldDefinition")
}

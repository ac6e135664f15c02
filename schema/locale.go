package schema

import propbin "github.com/reoring/propbin"

// StringTable maps localisation key hashes to display strings.
type StringTable struct {
	Locale         string            `bin:"locale"`
	Entries        map[uint32]string `bin:"entries,optional"`
	PathHashToSelf *propbin.PathHash `bin:"pathHashToSelf,optional"`
}

func registerLocale(b *propbin.Builder) {
	propbin.Record[StringTable](b, "StringTable", propbin.AsAsset())
}
